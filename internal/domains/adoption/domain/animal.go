package domain

import (
	"errors"
	"strings"
)

// Animal is an immutable catalog entry.
type Animal struct {
	Name          string
	Species       Species
	FavoriteItems []string
	// NeedsCompanion marks the animal whose order rule is waived once another animal is adopted.
	NeedsCompanion bool
}

var (
	ErrEmptyAnimalName       = errors.New("animal name is required")
	ErrNoFavoriteItems       = errors.New("animal must have at least one favorite item")
	ErrDuplicateFavoriteItem = errors.New("favorite items must be unique")
)

// NewAnimal validates the entry invariants and returns a defensive copy.
func NewAnimal(name string, species Species, favorites []string, needsCompanion bool) (Animal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Animal{}, ErrEmptyAnimalName
	}
	parsed, err := ParseSpecies(string(species))
	if err != nil {
		return Animal{}, err
	}
	if len(favorites) == 0 {
		return Animal{}, ErrNoFavoriteItems
	}
	seen := make(map[string]struct{}, len(favorites))
	for _, item := range favorites {
		if _, dup := seen[item]; dup {
			return Animal{}, ErrDuplicateFavoriteItem
		}
		seen[item] = struct{}{}
	}
	return Animal{
		Name:           name,
		Species:        parsed,
		FavoriteItems:  append([]string{}, favorites...),
		NeedsCompanion: needsCompanion,
	}, nil
}

// AcceptsInventory is the eligibility predicate for one adopter.
func (a Animal) AcceptsInventory(inv Inventory) bool {
	if a.Species.OrderSensitive() {
		return inv.ContainsInOrder(a.FavoriteItems)
	}
	return inv.ContainsAll(a.FavoriteItems)
}

func (a Animal) clone() Animal {
	a.FavoriteItems = append([]string{}, a.FavoriteItems...)
	return a
}
