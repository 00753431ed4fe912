package persistence_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyriadColors/repl-space-miner-go/internal/adapters/persistence"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
	"github.com/MyriadColors/repl-space-miner-go/test/helpers"
)

func buildTestRegion(t *testing.T, seed int64, name string, systems int) *celestial.Region {
	t.Helper()
	ctx := galaxy.NewContext(seed, galaxy.DefaultConfig(), nil, galaxy.NopObserver{})
	return galaxy.NewRegionBuilder(ctx).Build(name, systems)
}

// snapshotsByName marshals every system keyed by name so regions can be
// compared regardless of load order.
func snapshotsByName(t *testing.T, region *celestial.Region) map[string]string {
	t.Helper()
	out := make(map[string]string, len(region.Systems))
	for _, system := range region.Systems {
		data, err := persistence.MarshalSystem(system)
		require.NoError(t, err)
		out[system.Name] = data
	}
	return out
}

func TestRegionRepository_SaveAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalog := galaxy.DefaultConfig().Ores
	repo := persistence.NewGormRegionRepository(db, catalog)
	region := buildTestRegion(t, 42, "Frontier", 3)

	// Act - Save
	err := repo.Save(context.Background(), "run-1", 42, region)
	require.NoError(t, err)

	// Act - Load
	loaded, err := repo.Load(context.Background(), "Frontier")
	require.NoError(t, err)

	// Assert - the rebuilt tree serializes identically, in the same order
	assert.Equal(t, region.Name, loaded.Name)
	require.Len(t, loaded.Systems, len(region.Systems))
	for i := range region.Systems {
		assert.Equal(t, region.Systems[i].Name, loaded.Systems[i].Name)
	}
	assert.Equal(t, snapshotsByName(t, region), snapshotsByName(t, loaded))
}

func TestRegionRepository_LoadPreservesGenerationOrder(t *testing.T) {
	// Arrange - force an insertion order that disagrees with the
	// alphabetical one
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRegionRepository(db, galaxy.DefaultConfig().Ores)
	region := buildTestRegion(t, 42, "Frontier", 4)
	sort.Slice(region.Systems, func(i, j int) bool {
		return region.Systems[i].Name > region.Systems[j].Name
	})
	require.NoError(t, repo.Save(context.Background(), "run-1", 42, region))

	// Act
	loaded, err := repo.Load(context.Background(), "Frontier")

	// Assert
	require.NoError(t, err)
	require.Len(t, loaded.Systems, len(region.Systems))
	for i := range region.Systems {
		assert.Equal(t, region.Systems[i].Name, loaded.Systems[i].Name)
	}
}

func TestRegionRepository_SaveIsUpsert(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalog := galaxy.DefaultConfig().Ores
	repo := persistence.NewGormRegionRepository(db, catalog)

	first := buildTestRegion(t, 1, "Frontier", 3)
	require.NoError(t, repo.Save(context.Background(), "run-1", 1, first))

	// Act - re-save the same region name with a smaller regeneration
	second := buildTestRegion(t, 2, "Frontier", 2)
	require.NoError(t, repo.Save(context.Background(), "run-2", 2, second))

	// Assert - the old systems are gone and metadata reflects the re-save
	loaded, err := repo.Load(context.Background(), "Frontier")
	require.NoError(t, err)
	assert.Len(t, loaded.Systems, 2)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "run-2", records[0].RunID)
	assert.Equal(t, int64(2), records[0].Seed)
	assert.Equal(t, 2, records[0].Systems)
}

func TestRegionRepository_List(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalog := galaxy.DefaultConfig().Ores
	repo := persistence.NewGormRegionRepository(db, catalog)

	require.NoError(t, repo.Save(context.Background(), "run-b", 7, buildTestRegion(t, 7, "Beta", 2)))
	require.NoError(t, repo.Save(context.Background(), "run-a", 5, buildTestRegion(t, 5, "Alpha", 2)))

	// Act
	records, err := repo.List(context.Background())

	// Assert - ordered by name
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alpha", records[0].Name)
	assert.Equal(t, "Beta", records[1].Name)
	assert.NotEmpty(t, records[0].CreatedAt)
}

func TestRegionRepository_LoadMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRegionRepository(db, galaxy.DefaultConfig().Ores)

	_, err := repo.Load(context.Background(), "Nowhere")

	require.Error(t, err)
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRegionRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRegionRepository(db, galaxy.DefaultConfig().Ores)
	require.NoError(t, repo.Save(context.Background(), "run-1", 9, buildTestRegion(t, 9, "Doomed", 2)))

	// Act
	err := repo.Delete(context.Background(), "Doomed")
	require.NoError(t, err)

	// Assert
	_, err = repo.Load(context.Background(), "Doomed")
	assert.Error(t, err)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
