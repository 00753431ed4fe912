package utils

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(11, 42))
}

func TestWeightedChoiceEmpty(t *testing.T) {
	_, ok := WeightedChoice[string](testRNG(), nil)
	assert.False(t, ok)
}

func TestWeightedChoiceAllZeroWeights(t *testing.T) {
	items := []Weighted[string]{
		{Item: "a", Weight: 0},
		{Item: "b", Weight: -1},
	}
	_, ok := WeightedChoice(testRNG(), items)
	assert.False(t, ok)
}

func TestWeightedChoiceSingleItem(t *testing.T) {
	items := []Weighted[string]{{Item: "only", Weight: 0.5}}
	for i := 0; i < 50; i++ {
		v, ok := WeightedChoice(testRNG(), items)
		require.True(t, ok)
		assert.Equal(t, "only", v)
	}
}

func TestWeightedChoiceSkipsNonPositive(t *testing.T) {
	items := []Weighted[string]{
		{Item: "never", Weight: 0},
		{Item: "always", Weight: 1},
		{Item: "negative", Weight: -5},
	}
	rng := testRNG()
	for i := 0; i < 200; i++ {
		v, ok := WeightedChoice(rng, items)
		require.True(t, ok)
		assert.Equal(t, "always", v)
	}
}

func TestWeightedChoiceFollowsWeights(t *testing.T) {
	items := []Weighted[string]{
		{Item: "heavy", Weight: 9},
		{Item: "light", Weight: 1},
	}
	rng := testRNG()
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		v, ok := WeightedChoice(rng, items)
		require.True(t, ok)
		counts[v]++
	}
	assert.Greater(t, counts["heavy"], counts["light"])
	// With a 9:1 split the light item should land near 10% of draws.
	assert.InDelta(t, 1000, counts["light"], 300)
}

func TestEqualWeights(t *testing.T) {
	items := EqualWeights([]int{1, 2, 3})
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, 1.0, item.Weight)
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 3.14, Round2(3.14159))
	assert.Equal(t, 3.1416, Round4(3.141592))
	assert.Equal(t, 2.0, Round2(1.999))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-2, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, -1, Min(0, -1))
}
