package geom

import "testing"

func TestSign(t *testing.T) {
	cases := []struct {
		in   Coord
		want Coord
	}{
		{C(5, -3), C(1, -1)},
		{C(0, 0), C(0, 0)},
		{C(-7, 0), C(-1, 0)},
	}
	for _, c := range cases {
		if got := c.in.Sign(); got != c.want {
			t.Errorf("Sign(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNorms(t *testing.T) {
	c := C(3, -4)
	if got := c.L1(); got != 7 {
		t.Errorf("L1 = %d, want 7", got)
	}
	if got := c.L2(); got != 25 {
		t.Errorf("L2 = %d, want 25", got)
	}
}

func TestAddSubNeg(t *testing.T) {
	a, b := C(2, 3), C(-1, 4)
	if got := a.Add(b); got != C(1, 7) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != C(3, -1) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); got != C(-2, -3) {
		t.Errorf("Neg = %v", got)
	}
}

func TestShapeConstants(t *testing.T) {
	if len(Plus) != 4 {
		t.Errorf("Plus has %d entries, want 4", len(Plus))
	}
	if len(Square3x3) != 9 {
		t.Errorf("Square3x3 has %d entries, want 9", len(Square3x3))
	}
	if len(Diagonals) != 4 {
		t.Errorf("Diagonals has %d entries, want 4", len(Diagonals))
	}
	if len(Moore8) != 8 {
		t.Errorf("Moore8 has %d entries, want 8", len(Moore8))
	}
}
