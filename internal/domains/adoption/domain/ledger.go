package domain

// MaxAdoptionsPerAdopter caps how many animals one adopter takes home in a run.
const MaxAdoptionsPerAdopter = 3

// Ledger tracks the animals assigned to one adopter during a single run.
type Ledger struct {
	animals []string
}

// HasCapacity reports whether the adopter can take one more animal.
func (l *Ledger) HasCapacity() bool {
	return len(l.animals) < MaxAdoptionsPerAdopter
}

// Add records an adoption.
func (l *Ledger) Add(name string) {
	l.animals = append(l.animals, name)
}

// Len is the number of animals assigned so far.
func (l *Ledger) Len() int {
	return len(l.animals)
}
