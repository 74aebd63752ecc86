package domain

import (
	"errors"
	"strings"
)

// Species classifies shelter animals and decides how their favorite items are matched.
type Species string

const (
	SpeciesDog      Species = "dog"
	SpeciesCat      Species = "cat"
	SpeciesTortoise Species = "tortoise"
)

var ErrUnknownSpecies = errors.New("unknown species")

// ParseSpecies maps a stored or transported value onto a known species.
func ParseSpecies(value string) (Species, error) {
	switch species := Species(strings.ToLower(strings.TrimSpace(value))); species {
	case SpeciesDog, SpeciesCat, SpeciesTortoise:
		return species, nil
	default:
		return "", ErrUnknownSpecies
	}
}

// OrderSensitive reports whether an adopter must present favorites in the animal's order.
// Cats and tortoises only care about possession; dogs and anything else care about order.
func (s Species) OrderSensitive() bool {
	switch s {
	case SpeciesCat, SpeciesTortoise:
		return false
	default:
		return true
	}
}
