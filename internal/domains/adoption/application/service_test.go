package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/memory"
	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	"github.com/Apurer/go-gin-shelter-api/internal/shared/projection"
)

func TestService_Decide(t *testing.T) {
	svc := NewService(memory.NewCatalogRepository())

	tests := []struct {
		name  string
		input adoptiontypes.DecideInput
		want  []string
		err   error
	}{
		{
			name:  "first adopter takes rex",
			input: adoptiontypes.DecideInput{FirstAdopterItems: "RATO,BOLA", SecondAdopterItems: "RATO,NOVELO", Animals: "Rex,Fofo"},
			want:  []string{"Fofo - shelter", "Rex - person 1"},
		},
		{
			name:  "whitespace around tokens is ignored",
			input: adoptiontypes.DecideInput{FirstAdopterItems: " RATO , BOLA ", Animals: " Rex "},
			want:  []string{"Rex - person 1"},
		},
		{
			name:  "blank inventories are empty",
			input: adoptiontypes.DecideInput{Animals: "Rex,Mimi"},
			want:  []string{"Mimi - shelter", "Rex - shelter"},
		},
		{
			name:  "blank animal list is rejected",
			input: adoptiontypes.DecideInput{FirstAdopterItems: "RATO"},
			err:   domain.ErrInvalidAnimal,
		},
		{
			name:  "empty token in inventory is rejected",
			input: adoptiontypes.DecideInput{FirstAdopterItems: "RATO,,BOLA", Animals: "Rex"},
			err:   domain.ErrInvalidItem,
		},
		{
			name:  "animal names are case sensitive",
			input: adoptiontypes.DecideInput{Animals: "rex"},
			err:   domain.ErrInvalidAnimal,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Decide(context.Background(), tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.ErrorIs(t, err, ErrInvalidInput)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Lines())
		})
	}
}

func TestService_DecideCarriesCatalogVersion(t *testing.T) {
	repo := memory.NewCatalogRepository()
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.WithClock(func() time.Time { return stamp })

	result, err := NewService(repo).Decide(context.Background(), adoptiontypes.DecideInput{Animals: "Rex"})

	require.NoError(t, err)
	assert.Equal(t, stamp, result.Catalog.UpdatedAt)
}

type failingCatalog struct{ err error }

func (f failingCatalog) Load(context.Context) (*projection.Projection[*domain.Catalog], error) {
	return nil, f.err
}

type emptyCatalog struct{}

func (emptyCatalog) Load(context.Context) (*projection.Projection[*domain.Catalog], error) {
	return &projection.Projection[*domain.Catalog]{}, nil
}

func TestService_CatalogFailures(t *testing.T) {
	boom := errors.New("connection refused")
	tests := []struct {
		name string
		repo ports.CatalogRepository
		want error
	}{
		{"repository error passes through", failingCatalog{err: boom}, boom},
		{"unavailable passes through", failingCatalog{err: ports.ErrCatalogUnavailable}, ports.ErrCatalogUnavailable},
		{"missing catalog is unavailable", emptyCatalog{}, ports.ErrCatalogUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(tc.repo)
			_, err := svc.Decide(context.Background(), adoptiontypes.DecideInput{Animals: "Rex"})
			require.ErrorIs(t, err, tc.want)
			assert.NotErrorIs(t, err, ErrInvalidInput)

			_, err = svc.ListAnimals(context.Background())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_ListAnimals(t *testing.T) {
	view, err := NewService(memory.NewCatalogRepository()).ListAnimals(context.Background())

	require.NoError(t, err)
	names := make([]string, 0, len(view.Animals))
	for _, a := range view.Animals {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Rex", "Mimi", "Fofo", "Zero", "Bola", "Bebe", "Loco"}, names)
}
