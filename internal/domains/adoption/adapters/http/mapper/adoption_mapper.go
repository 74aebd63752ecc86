package mapper

import (
	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
)

// DecisionRequest is the HTTP payload for a decision run. Every list is a comma-delimited string.
type DecisionRequest struct {
	FirstAdopterItems  string `json:"firstAdopterItems" form:"firstAdopterItems"`
	SecondAdopterItems string `json:"secondAdopterItems" form:"secondAdopterItems"`
	Animals            string `json:"animals" form:"animals"`
}

// DecisionResponse is the successful variant of a decision run.
type DecisionResponse struct {
	Decisions []string `json:"decisions"`
}

// Animal is the HTTP representation of a catalog entry.
type Animal struct {
	Name           string   `json:"name"`
	Species        string   `json:"species"`
	FavoriteItems  []string `json:"favoriteItems"`
	NeedsCompanion bool     `json:"needsCompanion"`
}

// AnimalList is the catalog listing response.
type AnimalList struct {
	Animals []Animal `json:"animals"`
}

// ToDecideInput converts the transport payload into the application input.
func ToDecideInput(req DecisionRequest) adoptiontypes.DecideInput {
	return adoptiontypes.DecideInput{
		FirstAdopterItems:  req.FirstAdopterItems,
		SecondAdopterItems: req.SecondAdopterItems,
		Animals:            req.Animals,
	}
}

// FromDecisionResult renders the sorted decision lines.
func FromDecisionResult(result *adoptiontypes.DecisionResult) DecisionResponse {
	lines := result.Lines()
	if lines == nil {
		lines = []string{}
	}
	return DecisionResponse{Decisions: lines}
}

// FromCatalogView maps the catalog listing, preserving catalog order.
func FromCatalogView(view *adoptiontypes.CatalogView) AnimalList {
	if view == nil {
		return AnimalList{Animals: []Animal{}}
	}
	animals := make([]Animal, 0, len(view.Animals))
	for _, a := range view.Animals {
		animals = append(animals, Animal{
			Name:           a.Name,
			Species:        string(a.Species),
			FavoriteItems:  append([]string{}, a.FavoriteItems...),
			NeedsCompanion: a.NeedsCompanion,
		})
	}
	return AnimalList{Animals: animals}
}
