package core

import "testing"

func TestRandDeterministicWithSeed(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestRandIntnBounds(t *testing.T) {
	rng := NewRand(5)
	for i := 0; i < 1000; i++ {
		if v := rng.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) returned %d", v)
		}
	}
	if v := rng.Intn(0); v != 0 {
		t.Errorf("Intn(0) returned %d, want 0", v)
	}
}

func TestRandShuffleIsPermutation(t *testing.T) {
	rng := NewRand(11)
	values := []int{0, 1, 2, 3, 4, 5, 6, 7}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	seen := make(map[int]bool)
	for _, v := range values {
		if seen[v] {
			t.Fatalf("Value %d appears twice after shuffle", v)
		}
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct values, got %d", len(seen))
	}
}
