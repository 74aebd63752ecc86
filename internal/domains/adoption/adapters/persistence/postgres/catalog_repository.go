package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	"github.com/Apurer/go-gin-shelter-api/internal/shared/projection"
)

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository reads the animal catalog from PostgreSQL using GORM-mapped columns.
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository wires a PostgreSQL-backed catalog. The caller owns the DB lifecycle;
// the schema and seed rows come from platform/migrations.
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// animalRecord mirrors the shelter_animals schema owned by platform/migrations.
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

// Load reads every row in catalog order and builds the domain catalog.
func (r *CatalogRepository) Load(ctx context.Context) (*projection.Projection[*domain.Catalog], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []animalRecord
	if err := r.db.WithContext(ctx).Order("position ASC").Order("name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCatalogUnavailable, err)
	}
	if len(records) == 0 {
		return nil, ports.ErrCatalogUnavailable
	}
	animals := make([]domain.Animal, 0, len(records))
	var metadata projection.Metadata
	for _, rec := range records {
		animal, err := toDomainAnimal(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: animal %q: %w", ports.ErrCatalogUnavailable, rec.Name, err)
		}
		animals = append(animals, animal)
		if metadata.CreatedAt.IsZero() || rec.CreatedAt.Before(metadata.CreatedAt) {
			metadata.CreatedAt = rec.CreatedAt
		}
		if rec.UpdatedAt.After(metadata.UpdatedAt) {
			metadata.UpdatedAt = rec.UpdatedAt
		}
	}
	catalog, err := domain.NewCatalog(animals...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCatalogUnavailable, err)
	}
	return &projection.Projection[*domain.Catalog]{Entity: catalog, Metadata: metadata}, nil
}

func (r *CatalogRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toDomainAnimal(rec animalRecord) (domain.Animal, error) {
	species, err := domain.ParseSpecies(rec.Species)
	if err != nil {
		return domain.Animal{}, err
	}
	return domain.NewAnimal(rec.Name, species, []string(rec.FavoriteItems), rec.NeedsCompanion)
}
