package eflog

import "testing"

func TestLineRing(t *testing.T) {
	r := newLineRing(3)
	r.push("a")
	r.push("b")
	if r.full() {
		t.Fatal("ring with 2 of 3 lines reported full")
	}
	r.push("c")
	if !r.full() {
		t.Fatal("ring with 3 of 3 lines not full")
	}
	if got := r.oldest(); got != "a" {
		t.Errorf("oldest = %q, want a", got)
	}
	r.push("d")
	if got := r.oldest(); got != "b" {
		t.Errorf("oldest after wrap = %q, want b", got)
	}
}
