package ore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 9)

	seen := map[int]bool{}
	for _, o := range catalog {
		assert.False(t, seen[o.ID], "duplicate ore id %d", o.ID)
		seen[o.ID] = true
		assert.NotEmpty(t, o.Name)
		assert.Greater(t, o.BaseValue, 0.0)
		assert.Greater(t, o.Volume, 0.0)
		assert.NotEmpty(t, o.Yield, "ore %s has no mineral yield", o.Name)
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := DefaultCatalog()

	o, ok := ByName(catalog, "Pyrogen")
	require.True(t, ok)
	assert.Equal(t, 0, o.ID)

	o, ok = ByID(catalog, 3)
	require.True(t, ok)
	assert.Equal(t, "Varite", o.Name)

	_, ok = ByName(catalog, "Unobtainium")
	assert.False(t, ok)
	_, ok = ByID(catalog, 99)
	assert.False(t, ok)
}

func TestOreCategoryFollowsDominantYield(t *testing.T) {
	catalog := DefaultCatalog()

	pyrogen, _ := ByName(catalog, "Pyrogen")
	assert.Equal(t, HighTemp, pyrogen.Category())

	ascorbon, _ := ByName(catalog, "Ascorbon")
	assert.Equal(t, LowTemp, ascorbon.Category())

	angion, _ := ByName(catalog, "Angion")
	assert.Equal(t, MidTemp, angion.Category())
}

func TestMineralTable(t *testing.T) {
	require.Len(t, Minerals, 12)
	for id, m := range Minerals {
		assert.Equal(t, id, m.ID)
		assert.Contains(t, Categories(), m.Category)
	}
}
