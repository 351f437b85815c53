package types

import "testing"

func TestEdgeAfter(t *testing.T) {
	if lvl, ok := EdgeFalling.After(); !ok || lvl != Low {
		t.Fatalf("falling: got %v,%v", lvl, ok)
	}
	if lvl, ok := EdgeRising.After(); !ok || lvl != High {
		t.Fatalf("rising: got %v,%v", lvl, ok)
	}
	if _, ok := EdgeBoth.After(); ok {
		t.Fatal("both has no single post-edge level")
	}
}

func TestParsePull(t *testing.T) {
	for in, want := range map[string]Pull{"up": PullUp, "down": PullDown, "none": PullNone, "": PullNone} {
		got, ok := ParsePull(in)
		if !ok || got != want {
			t.Fatalf("ParsePull(%q) = %v,%v", in, got, ok)
		}
	}
	if _, ok := ParsePull("sideways"); ok {
		t.Fatal("expected unknown pull to be rejected")
	}
}
