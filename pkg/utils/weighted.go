package utils

import "math/rand/v2"

// Weighted pairs an item with its selection weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// WeightedChoice selects one item via a cumulative-weight draw. Items with
// non-positive weights contribute nothing to the draw. Returns false when the
// list is empty or no weight is positive.
func WeightedChoice[T any](rng *rand.Rand, items []Weighted[T]) (T, bool) {
	var zero T
	total := 0.0
	for _, it := range items {
		if it.Weight > 0 {
			total += it.Weight
		}
	}
	if total <= 0 {
		return zero, false
	}

	target := rng.Float64() * total
	cumulative := 0.0
	for _, it := range items {
		if it.Weight <= 0 {
			continue
		}
		cumulative += it.Weight
		if target <= cumulative {
			return it.Item, true
		}
	}
	// Floating point edge: target landed on the open end of the last interval.
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return items[i].Item, true
		}
	}
	return zero, false
}

// EqualWeights wraps items with a uniform weight of 1.0.
func EqualWeights[T any](items []T) []Weighted[T] {
	out := make([]Weighted[T], len(items))
	for i, it := range items {
		out[i] = Weighted[T]{Item: it, Weight: 1.0}
	}
	return out
}
