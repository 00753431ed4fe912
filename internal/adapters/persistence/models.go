package persistence

import "time"

// RegionModel stores one generated region. The object tree itself lives in
// the per-system rows; this row carries run metadata.
type RegionModel struct {
	Name      string    `gorm:"column:name;primaryKey"`
	RunID     string    `gorm:"column:run_id;not null"` // UUID per generation run
	Seed      int64     `gorm:"column:seed;not null"`
	Systems   int       `gorm:"column:systems;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (RegionModel) TableName() string {
	return "regions"
}

// SystemModel stores one solar system as a JSON snapshot. The full body
// tree serializes into a single document; queries that need structure go
// through the decoded domain objects, not SQL.
type SystemModel struct {
	RegionName string    `gorm:"column:region_name;primaryKey"`
	Name       string    `gorm:"column:name;primaryKey"`
	Seq        int       `gorm:"column:seq;not null"` // generation order within the region
	X          float64   `gorm:"column:x;not null"`
	Y          float64   `gorm:"column:y;not null"`
	StarClass  string    `gorm:"column:star_class;not null"`
	Data       string    `gorm:"column:data;type:text"` // JSON snapshot
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (SystemModel) TableName() string {
	return "region_systems"
}
