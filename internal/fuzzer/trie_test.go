package fuzzer

import "testing"

func TestTrieInsertReportsNoveltyOnce(t *testing.T) {
	tr := newTrie()
	if !tr.insert([]byte("ef")) {
		t.Fatalf("first insert of a sequence should be novel")
	}
	if tr.insert([]byte("ef")) {
		t.Errorf("re-inserting the same sequence should not be novel")
	}
}

func TestTrieDistinguishesSequencesBySharedPrefix(t *testing.T) {
	tr := newTrie()
	tr.insert([]byte("ef"))
	if !tr.insert([]byte("efi")) {
		t.Errorf("a longer sequence sharing a prefix should still be novel")
	}
	if !tr.insert([]byte("e")) {
		t.Errorf("a shorter prefix of an already-seen sequence should still be novel")
	}
}

func TestTrieInsertEmptySequence(t *testing.T) {
	tr := newTrie()
	if !tr.insert(nil) {
		t.Fatalf("the empty sequence should be novel the first time")
	}
	if tr.insert(nil) {
		t.Errorf("the empty sequence should not be novel twice")
	}
}
