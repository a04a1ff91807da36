package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesOriginalConstants(t *testing.T) {
	cfg := Default()
	if cfg.Board.Width != 32 || cfg.Board.Height != 32 {
		t.Errorf("expected a 32x32 default board, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Solver.QueueBuckets != 64 || cfg.Solver.QueueCap != 65536 {
		t.Errorf("unexpected solver queue defaults: %+v", cfg.Solver)
	}
	if cfg.Solver.ValidationSeeds != 256 || cfg.Solver.ValidationThreshold != 64 {
		t.Errorf("unexpected solver validation defaults: %+v", cfg.Solver)
	}
	if cfg.Fuzzer.MaxPassesPerEntry != 2048 || cfg.Fuzzer.Alphabet != "efij<" {
		t.Errorf("unexpected fuzzer defaults: %+v", cfg.Fuzzer)
	}
}

func TestLoadOverridesDefaultsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cotton.yaml")
	yamlBody := "board:\n  width: 16\n  height: 16\nsolver:\n  workers: 4\n"
	if err := os.WriteFile(path, []byte(yamlBody), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if cfg.Board.Width != 16 || cfg.Board.Height != 16 {
		t.Errorf("expected the overridden board size, got %dx%d", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Solver.Workers != 4 {
		t.Errorf("expected overridden worker count 4, got %d", cfg.Solver.Workers)
	}
	if cfg.Solver.QueueCap != 65536 {
		t.Errorf("expected the unspecified QueueCap to keep its default, got %d", cfg.Solver.QueueCap)
	}
}

func TestLoadReturnsErrorOnMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/cotton.yaml"); err == nil {
		t.Errorf("expected an error loading a nonexistent file")
	}
}

func TestMustLoadPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected MustLoad to panic on a missing file")
		}
	}()
	MustLoad("/nonexistent/cotton.yaml")
}
