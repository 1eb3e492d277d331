package utils

import "testing"

func TestChooseWeightedDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	weights := []float64{0.6, 0.1, 0.3}
	for i := 0; i < 100; i++ {
		if x, y := a.ChooseWeighted(weights), b.ChooseWeighted(weights); x != y {
			t.Fatalf("draw %d differs for equal seeds: %d vs %d", i, x, y)
		}
	}
}

func TestChooseWeightedDistribution(t *testing.T) {
	s := NewPRNGService(1)
	weights := []float64{0.6, 0.1, 0.3}
	counts := make([]int, len(weights))
	const n = 20000
	for i := 0; i < n; i++ {
		counts[s.ChooseWeighted(weights)]++
	}
	for i, w := range weights {
		got := float64(counts[i]) / n
		if got < w-0.03 || got > w+0.03 {
			t.Errorf("index %d chosen %.3f of the time, want about %.2f", i, got, w)
		}
	}
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	s := NewPRNGService(3)
	if got := s.ChooseWeighted(nil); got != -1 {
		t.Errorf("empty weights: got %d, want -1", got)
	}
	if got := s.ChooseWeighted([]float64{0, 0}); got != -1 {
		t.Errorf("zero weights: got %d, want -1", got)
	}
	for i := 0; i < 50; i++ {
		if got := s.ChooseWeighted([]float64{0, 1, 0}); got != 1 {
			t.Fatalf("single positive weight: got %d, want 1", got)
		}
	}
}

func TestSeedIsKept(t *testing.T) {
	if got := NewPRNGService(99).Seed(); got != 99 {
		t.Errorf("Seed() = %d, want 99", got)
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed should be replaced by the clock")
	}
}
