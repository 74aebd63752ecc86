package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

// ErrInvalidInput signals the request was rejected by the decision engine.
var ErrInvalidInput = errors.New("invalid adoption request")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var rejection *domain.RejectionError
	if errors.As(err, &rejection) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, domain.ErrEmptyCatalog) ||
		errors.Is(err, domain.ErrDuplicateAnimal) ||
		errors.Is(err, domain.ErrMultipleCompanionAnimals) {
		return fmt.Errorf("%w: %w", ports.ErrCatalogUnavailable, err)
	}
	return err
}
