package datagen

import (
	"fmt"
	"sort"
)

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// WeightedSampler draws elements with probability proportional to the
// weight paired with each element. The pairing is fixed at construction, so
// a shuffled weight slice decouples sampling skew from element order.
type WeightedSampler[T any] struct {
	items      []T
	cumulative []int
	total      int
}

// NewWeightedSampler pairs items with weights. Weights must be positive.
func NewWeightedSampler[T any](items []T, weights []int) (*WeightedSampler[T], error) {
	if len(items) == 0 || len(items) != len(weights) {
		return nil, fmt.Errorf("items and weights must be non-empty and equal length")
	}
	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w <= 0 {
			return nil, fmt.Errorf("weight at index %d must be positive", i)
		}
		total += w
		cumulative[i] = total
	}
	return &WeightedSampler[T]{items: items, cumulative: cumulative, total: total}, nil
}

// Sample draws one element.
func (s *WeightedSampler[T]) Sample(f *Faker) T {
	r := f.Int(1, s.total)
	idx := sort.SearchInts(s.cumulative, r)
	return s.items[idx]
}

// SkewedWeights builds a weight slice where roughly topShare of the n slots
// carry the heavy weight and the rest the light weight, shuffled so the
// heavy slots land on arbitrary keys.
func SkewedWeights(f *Faker, n int, topShare float64, heavy, light int) []int {
	weights := make([]int, n)
	top := int(float64(n) * topShare)
	for i := range weights {
		if i < top {
			weights[i] = heavy
		} else {
			weights[i] = light
		}
	}
	f.ShuffleInts(weights)
	return weights
}

// SampleWithoutReplacement returns n distinct elements from items, via a
// partial Fisher-Yates shuffle over a copy. n is clamped to len(items).
func SampleWithoutReplacement[T any](f *Faker, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < n; i++ {
		j := f.Int(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
