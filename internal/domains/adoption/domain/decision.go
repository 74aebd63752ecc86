package domain

import (
	"sort"
	"strings"
)

// Destination is where an animal ends up after a run.
type Destination string

const (
	DestinationFirstAdopter  Destination = "person 1"
	DestinationSecondAdopter Destination = "person 2"
	DestinationShelter       Destination = "shelter"
)

// Label is the display string used in rendered decisions.
func (d Destination) Label() string {
	return string(d)
}

// Adopted reports whether the destination is one of the adopters.
func (d Destination) Adopted() bool {
	return d == DestinationFirstAdopter || d == DestinationSecondAdopter
}

// Decision pairs a requested animal with its destination.
type Decision struct {
	Animal      string      `json:"animal"`
	Destination Destination `json:"destination"`
}

func (d Decision) String() string {
	return d.Animal + " - " + d.Destination.Label()
}

// Outcome is the successful result of a run, sorted by rendered line.
type Outcome struct {
	Decisions []Decision
}

// Lines renders every decision in output order.
func (o Outcome) Lines() []string {
	lines := make([]string, 0, len(o.Decisions))
	for _, d := range o.Decisions {
		lines = append(lines, d.String())
	}
	return lines
}

func sortDecisions(decisions []Decision) {
	sort.SliceStable(decisions, func(i, j int) bool {
		return strings.Compare(decisions[i].String(), decisions[j].String()) < 0
	})
}
