package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// GormRegionRepository implements celestial.RegionRepository using GORM
type GormRegionRepository struct {
	db      *gorm.DB
	catalog []*ore.Ore
}

// NewGormRegionRepository creates a new GORM-based region repository. The
// ore catalog resolves snapshot ore ids back to live catalog entries.
func NewGormRegionRepository(db *gorm.DB, catalog []*ore.Ore) celestial.RegionRepository {
	return &GormRegionRepository{
		db:      db,
		catalog: catalog,
	}
}

// Save persists a region and all its systems (upsert)
func (r *GormRegionRepository) Save(ctx context.Context, runID string, seed int64, region *celestial.Region) error {
	now := time.Now()
	model := RegionModel{
		Name:      region.Name,
		RunID:     runID,
		Seed:      seed,
		Systems:   len(region.Systems),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"run_id", "seed", "systems", "updated_at"}),
		}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save region: %w", err)
		}

		// Replace the region's system rows wholesale; a re-save may carry
		// fewer systems than before.
		if err := tx.Where("region_name = ?", region.Name).Delete(&SystemModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear region systems: %w", err)
		}

		for i, system := range region.Systems {
			data, err := MarshalSystem(system)
			if err != nil {
				return err
			}
			row := SystemModel{
				RegionName: region.Name,
				Name:       system.Name,
				Seq:        i,
				X:          system.Coordinates.X,
				Y:          system.Coordinates.Y,
				StarClass:  string(system.Star.Class()),
				Data:       data,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to save system %s: %w", system.Name, err)
			}
		}
		return nil
	})
}

// Load retrieves a region and rebuilds its full object tree
func (r *GormRegionRepository) Load(ctx context.Context, name string) (*celestial.Region, error) {
	var model RegionModel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("region", name)
		}
		return nil, fmt.Errorf("failed to load region: %w", err)
	}

	// Systems come back in generation order so a loaded region matches the
	// generated one slice for slice.
	var rows []SystemModel
	err = r.db.WithContext(ctx).
		Where("region_name = ?", name).
		Order("seq").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load region systems: %w", err)
	}

	region := celestial.NewRegion(model.Name)
	for _, row := range rows {
		system, err := UnmarshalSystem(row.Data, r.catalog)
		if err != nil {
			return nil, fmt.Errorf("failed to decode system %s: %w", row.Name, err)
		}
		region.AddSystem(system)
	}
	return region, nil
}

// List returns metadata for every persisted region
func (r *GormRegionRepository) List(ctx context.Context) ([]celestial.RegionRecord, error) {
	var models []RegionModel
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}

	records := make([]celestial.RegionRecord, 0, len(models))
	for _, m := range models {
		records = append(records, celestial.RegionRecord{
			Name:      m.Name,
			RunID:     m.RunID,
			Seed:      m.Seed,
			Systems:   m.Systems,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return records, nil
}

// Delete removes a region and its systems
func (r *GormRegionRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("region_name = ?", name).Delete(&SystemModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete region systems: %w", err)
		}
		if err := tx.Where("name = ?", name).Delete(&RegionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete region: %w", err)
		}
		return nil
	})
}
