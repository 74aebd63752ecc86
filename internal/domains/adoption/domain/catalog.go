package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog             = errors.New("catalog must contain at least one animal")
	ErrDuplicateAnimal          = errors.New("catalog animal names must be unique")
	ErrMultipleCompanionAnimals = errors.New("catalog allows a single companion-dependent animal")
)

// Catalog is the fixed table of shelter animals a decision run is evaluated against.
// It is never mutated after construction, so one value can serve concurrent runs.
type Catalog struct {
	order   []string
	animals map[string]Animal
	items   map[string]struct{}
}

// NewCatalog validates every entry with NewAnimal and indexes them by name and favorite item.
func NewCatalog(animals ...Animal) (*Catalog, error) {
	if len(animals) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		order:   make([]string, 0, len(animals)),
		animals: make(map[string]Animal, len(animals)),
		items:   map[string]struct{}{},
	}
	companions := 0
	for _, entry := range animals {
		animal, err := NewAnimal(entry.Name, entry.Species, entry.FavoriteItems, entry.NeedsCompanion)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", entry.Name, err)
		}
		if _, dup := c.animals[animal.Name]; dup {
			return nil, ErrDuplicateAnimal
		}
		if animal.NeedsCompanion {
			companions++
		}
		c.order = append(c.order, animal.Name)
		c.animals[animal.Name] = animal
		for _, item := range animal.FavoriteItems {
			c.items[item] = struct{}{}
		}
	}
	if companions > 1 {
		return nil, ErrMultipleCompanionAnimals
	}
	return c, nil
}

// DefaultCatalog returns the shelter's current residents.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultAnimals()...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultAnimals lists the shelter's residents in catalog order.
func DefaultAnimals() []Animal {
	return []Animal{
		{Name: "Rex", Species: SpeciesDog, FavoriteItems: []string{"RATO", "BOLA"}},
		{Name: "Mimi", Species: SpeciesCat, FavoriteItems: []string{"BOLA", "LASER"}},
		{Name: "Fofo", Species: SpeciesCat, FavoriteItems: []string{"BOLA", "RATO", "LASER"}},
		{Name: "Zero", Species: SpeciesCat, FavoriteItems: []string{"RATO", "BOLA"}},
		{Name: "Bola", Species: SpeciesDog, FavoriteItems: []string{"CAIXA", "NOVELO"}},
		{Name: "Bebe", Species: SpeciesDog, FavoriteItems: []string{"LASER", "RATO", "BOLA"}},
		{Name: "Loco", Species: SpeciesTortoise, FavoriteItems: []string{"SKATE", "RATO"}, NeedsCompanion: true},
	}
}

// Lookup returns a copy of the named animal.
func (c *Catalog) Lookup(name string) (Animal, bool) {
	animal, ok := c.animals[name]
	if !ok {
		return Animal{}, false
	}
	return animal.clone(), true
}

// KnowsItem reports whether any animal lists the item as a favorite.
func (c *Catalog) KnowsItem(item string) bool {
	_, ok := c.items[item]
	return ok
}

// Animals returns copies of every entry in catalog order.
func (c *Catalog) Animals() []Animal {
	result := make([]Animal, 0, len(c.order))
	for _, name := range c.order {
		result = append(result, c.animals[name].clone())
	}
	return result
}

// Len is the number of animals in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}
