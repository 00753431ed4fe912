package celestial

import "context"

// RegionRecord is the stored metadata for one persisted region.
type RegionRecord struct {
	Name      string
	RunID     string
	Seed      int64
	Systems   int
	CreatedAt string
}

// RegionRepository persists generated regions. Saving the same region name
// twice overwrites the earlier snapshot.
type RegionRepository interface {
	Save(ctx context.Context, runID string, seed int64, region *Region) error
	Load(ctx context.Context, name string) (*Region, error)
	List(ctx context.Context) ([]RegionRecord, error)
	Delete(ctx context.Context, name string) error
}
