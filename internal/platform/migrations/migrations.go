package migrations

import (
	"context"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
)

// Run applies the schema for the bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&animalRecord{})
}

// SeedCatalog inserts the given animals in order, skipping names that already exist.
// Rows edited by operators are never overwritten.
func SeedCatalog(ctx context.Context, db *gorm.DB, animals []domain.Animal) error {
	if db == nil || len(animals) == 0 {
		return nil
	}
	records := make([]animalRecord, 0, len(animals))
	for i, animal := range animals {
		records = append(records, animalRecord{
			Name:           animal.Name,
			Species:        string(animal.Species),
			FavoriteItems:  pq.StringArray(append([]string{}, animal.FavoriteItems...)),
			NeedsCompanion: animal.NeedsCompanion,
			Position:       i,
		})
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&records).Error
}

// Animal schema mirrors the adoption Postgres adapter.
type animalRecord struct {
	Name           string         `gorm:"primaryKey;column:name;size:64"`
	Species        string         `gorm:"column:species;type:varchar(16);not null"`
	FavoriteItems  pq.StringArray `gorm:"column:favorite_items;type:text[];not null"`
	NeedsCompanion bool           `gorm:"column:needs_companion;not null;default:false"`
	Position       int            `gorm:"column:position;index"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
}

func (animalRecord) TableName() string { return "shelter_animals" }
