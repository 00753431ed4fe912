package galaxy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemNamesFromEmptyPoolStayUnique(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NamePool = nil
	b := NewRegionBuilder(NewContext(1, cfg, nil, NopObserver{}))

	// Enough draws that the syllable generator is all but guaranteed to
	// repeat itself at least once.
	names := b.systemNames(5000)
	require.Len(t, names, 5000)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate system name %q", name)
		seen[name] = true
	}
}

func TestSystemNamesDedupSuffixesCollisions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NamePool = []string{"Vega", "Vega 2"}
	b := NewRegionBuilder(NewContext(1, cfg, nil, NopObserver{}))

	// Overflowing a pool that already contains "Vega 2" forces the suffix
	// branch into a collision it must resolve.
	names := b.systemNames(4)
	require.Len(t, names, 4)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		assert.False(t, seen[name], "duplicate system name %q", name)
		seen[name] = true
	}
}

func TestSystemNamesExhaustedPoolUsesSuffixes(t *testing.T) {
	cfg := DefaultConfig()
	pool := make([]string, 10)
	copy(pool, cfg.NamePool)
	cfg.NamePool = pool
	b := NewRegionBuilder(NewContext(1, cfg, nil, NopObserver{}))

	names := b.systemNames(25)
	require.Len(t, names, 25)

	suffixed := 0
	for round := 2; round <= 3; round++ {
		for _, name := range names {
			for _, base := range pool {
				if name == fmt.Sprintf("%s %d", base, round) {
					suffixed++
				}
			}
		}
	}
	assert.Equal(t, 15, suffixed, "25 systems over a 10-name pool reuse 15 suffixed names")
}
