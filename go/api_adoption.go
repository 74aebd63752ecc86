package shelterserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	adoptionmapper "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/http/mapper"
	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

// AdoptionAPI wires HTTP transport with the adoption bounded context service and workflows.
type AdoptionAPI struct {
	service   adoptionports.Service
	workflows adoptionports.WorkflowOrchestrator
}

// NewAdoptionAPI creates an AdoptionAPI backed by the provided service. A nil orchestrator
// sends requests straight to the service.
func NewAdoptionAPI(service adoptionports.Service, workflows adoptionports.WorkflowOrchestrator) AdoptionAPI {
	return AdoptionAPI{service: service, workflows: workflows}
}

// Post /v1/adoptions/decisions
// Decide which adopter takes each requested animal
func (api *AdoptionAPI) DecideAdoptions(c *gin.Context) {
	var payload adoptionmapper.DecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	api.decide(c, adoptionmapper.ToDecideInput(payload))
}

// Get /v1/adoptions/decisions
// Decide adoptions from query parameters
func (api *AdoptionAPI) DecideAdoptionsFromQuery(c *gin.Context) {
	query := c.Request.URL.Query()
	var first, second, animals *string
	bindings := []struct {
		name string
		dest **string
	}{
		{"firstAdopterItems", &first},
		{"secondAdopterItems", &second},
		{"animals", &animals},
	}
	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			respondBadRequest(c, err)
			return
		}
	}
	api.decide(c, adoptionmapper.ToDecideInput(adoptionmapper.DecisionRequest{
		FirstAdopterItems:  deref(first),
		SecondAdopterItems: deref(second),
		Animals:            deref(animals),
	}))
}

func (api *AdoptionAPI) decide(c *gin.Context, input adoptiontypes.DecideInput) {
	result, err := api.runDecision(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromDecisionResult(result))
}

func (api *AdoptionAPI) runDecision(ctx context.Context, input adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	if api.workflows != nil {
		return api.workflows.Decide(ctx, input)
	}
	return api.service.Decide(ctx, input)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
