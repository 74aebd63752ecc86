package domain

import "errors"

// Request carries the inputs of one decision run.
type Request struct {
	FirstInventory  Inventory
	SecondInventory Inventory
	Animals         []string
}

// Engine decides adoptions against a fixed catalog. It holds no per-run state.
type Engine struct {
	catalog *Catalog
}

// NewEngine binds the engine to an immutable catalog.
func NewEngine(catalog *Catalog) (*Engine, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Engine{catalog: catalog}, nil
}

// Catalog exposes the catalog the engine evaluates against.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Decide validates the request, resolves every animal, applies the companion rule and
// returns the decisions sorted by rendered line.
func (e *Engine) Decide(req Request) (Outcome, error) {
	if err := e.validateAnimals(req.Animals); err != nil {
		return Outcome{}, err
	}
	if err := errors.Join(
		e.validateInventory("first", req.FirstInventory),
		e.validateInventory("second", req.SecondInventory),
	); err != nil {
		return Outcome{}, firstRejection(err)
	}

	r := &run{first: req.FirstInventory, second: req.SecondInventory}
	decisions := make([]Decision, 0, len(req.Animals))
	for _, name := range req.Animals {
		animal, _ := e.catalog.Lookup(name)
		if animal.NeedsCompanion {
			// Deferred until every other animal has a destination.
			decisions = append(decisions, Decision{Animal: name, Destination: DestinationShelter})
			continue
		}
		decisions = append(decisions, Decision{
			Animal:      name,
			Destination: r.resolve(animal.AcceptsInventory(r.first), animal.AcceptsInventory(r.second), name),
		})
	}
	e.applyCompanionRule(r, decisions)

	sortDecisions(decisions)
	return Outcome{Decisions: decisions}, nil
}

func (e *Engine) validateAnimals(names []string) error {
	if len(names) == 0 {
		return rejectAnimal("no animals requested")
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := e.catalog.Lookup(name); !ok {
			return rejectAnimal("animal %q is not in the catalog", name)
		}
		if _, dup := seen[name]; dup {
			return rejectAnimal("animal %q requested more than once", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func (e *Engine) validateInventory(owner string, inv Inventory) error {
	seen := make(map[string]struct{}, len(inv))
	for _, item := range inv {
		if !e.catalog.KnowsItem(item) {
			return rejectItem("%s adopter item %q is not a known favorite", owner, item)
		}
		if _, dup := seen[item]; dup {
			return rejectItem("%s adopter lists item %q more than once", owner, item)
		}
		seen[item] = struct{}{}
	}
	return nil
}

// applyCompanionRule resolves the companion-dependent animal once every other animal has a
// destination. Without another adoption in the same run it stays in the shelter; otherwise
// favorites are matched ignoring order and the usual tie and cap rules apply to the current
// ledgers. The record is replaced in place.
func (e *Engine) applyCompanionRule(r *run, decisions []Decision) {
	for i, decision := range decisions {
		animal, _ := e.catalog.Lookup(decision.Animal)
		if !animal.NeedsCompanion {
			continue
		}
		if !hasCompanion(decisions, i) {
			continue
		}
		firstOK := r.first.ContainsAll(animal.FavoriteItems)
		secondOK := r.second.ContainsAll(animal.FavoriteItems)
		decisions[i].Destination = r.resolve(firstOK, secondOK, animal.Name)
	}
}

func hasCompanion(decisions []Decision, self int) bool {
	for i, d := range decisions {
		if i != self && d.Destination.Adopted() {
			return true
		}
	}
	return false
}

// run holds the ledgers of a single Decide call.
type run struct {
	first, second             Inventory
	firstLedger, secondLedger Ledger
}

// resolve applies the tie and cap rules. Mutual eligibility sends the animal to the shelter
// whatever the ledgers hold.
func (r *run) resolve(firstOK, secondOK bool, name string) Destination {
	switch {
	case firstOK && secondOK:
		return DestinationShelter
	case firstOK && r.firstLedger.HasCapacity():
		r.firstLedger.Add(name)
		return DestinationFirstAdopter
	case secondOK && r.secondLedger.HasCapacity():
		r.secondLedger.Add(name)
		return DestinationSecondAdopter
	default:
		return DestinationShelter
	}
}

func firstRejection(err error) error {
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		return rejection
	}
	return err
}
