package datagen

import "testing"

func TestChoose(t *testing.T) {
	f := NewFaker(1)
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		seen[Choose(f, items)] = true
	}
	if len(seen) != 3 {
		t.Errorf("Choose over 100 draws should see all 3 items, saw %d", len(seen))
	}
}

func TestChooseEmpty(t *testing.T) {
	f := NewFaker(1)
	if v := Choose(f, []string{}); v != "" {
		t.Errorf("Choose on empty slice should return zero value, got %q", v)
	}
}

func TestWeightedSamplerSkew(t *testing.T) {
	f := NewFaker(2)
	s, err := NewWeightedSampler([]string{"heavy", "light"}, []int{10, 1})
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	const n = 22000
	for i := 0; i < n; i++ {
		counts[s.Sample(f)]++
	}
	// Expected heavy share 10/11 ~= 0.909
	share := float64(counts["heavy"]) / n
	if share < 0.88 || share > 0.94 {
		t.Errorf("heavy share %f outside tolerance around 0.909", share)
	}
}

func TestWeightedSamplerValidation(t *testing.T) {
	if _, err := NewWeightedSampler([]string{"a"}, []int{1, 2}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
	if _, err := NewWeightedSampler([]string{}, []int{}); err == nil {
		t.Error("Expected error for empty inputs")
	}
	if _, err := NewWeightedSampler([]string{"a"}, []int{0}); err == nil {
		t.Error("Expected error for non-positive weight")
	}
}

func TestSkewedWeights(t *testing.T) {
	f := NewFaker(3)
	weights := SkewedWeights(f, 50, 0.2, 10, 1)
	if len(weights) != 50 {
		t.Fatalf("Expected 50 weights, got %d", len(weights))
	}
	heavy, light := 0, 0
	for _, w := range weights {
		switch w {
		case 10:
			heavy++
		case 1:
			light++
		default:
			t.Fatalf("Unexpected weight %d", w)
		}
	}
	if heavy != 10 || light != 40 {
		t.Errorf("Expected 10 heavy / 40 light, got %d / %d", heavy, light)
	}
}

func TestSkewedWeightsShuffled(t *testing.T) {
	// Heavy weights must not systematically occupy the leading slots.
	f := NewFaker(4)
	leading := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		weights := SkewedWeights(f, 10, 0.2, 10, 1)
		if weights[0] == 10 && weights[1] == 10 {
			leading++
		}
	}
	if leading == trials {
		t.Error("Heavy weights always lead; shuffle is not happening")
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	f := NewFaker(5)
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	sample := SampleWithoutReplacement(f, items, 30)
	if len(sample) != 30 {
		t.Fatalf("Expected 30 samples, got %d", len(sample))
	}
	seen := map[int]bool{}
	for _, v := range sample {
		if seen[v] {
			t.Fatalf("Duplicate value %d in sample", v)
		}
		seen[v] = true
	}

	// Source slice must be untouched
	for i, v := range items {
		if v != i {
			t.Fatal("SampleWithoutReplacement mutated its input")
		}
	}
}

func TestSampleWithoutReplacementClamped(t *testing.T) {
	f := NewFaker(6)
	sample := SampleWithoutReplacement(f, []int{1, 2, 3}, 10)
	if len(sample) != 3 {
		t.Errorf("Expected clamp to 3, got %d", len(sample))
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence("TX", 9)
	if got := seq.Next(); got != "TX000000001" {
		t.Errorf("Expected TX000000001, got %s", got)
	}
	if got := seq.Next(); got != "TX000000002" {
		t.Errorf("Expected TX000000002, got %s", got)
	}
	if seq.Count() != 2 {
		t.Errorf("Expected count 2, got %d", seq.Count())
	}

	mseq := NewSequence("M", 8)
	if got := mseq.Next(); got != "M00000001" {
		t.Errorf("Expected M00000001, got %s", got)
	}
}
