package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.Uniform(-3, 3), b.Uniform(-3, 3); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestUniformBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(-7.5, 7.5)
		if v < -7.5 || v >= 7.5 {
			t.Fatalf("uniform out of range: %v", v)
		}
		c := r.Centered(80)
		if c < -40 || c >= 40 {
			t.Fatalf("centered out of range: %v", c)
		}
	}
	if got := r.Uniform(5, 5); got != 5 {
		t.Fatalf("degenerate range should return lo, got %v", got)
	}
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}

func TestDeriveIsReproducible(t *testing.T) {
	a := NewRNG(99).Derive()
	b := NewRNG(99).Derive()
	if a.Float64() != b.Float64() {
		t.Fatal("derived generators from equal seeds must match")
	}
}
