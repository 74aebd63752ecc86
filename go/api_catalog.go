package shelterserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adoptionmapper "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/http/mapper"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
)

// CatalogAPI exposes the shelter's animal catalog.
type CatalogAPI struct {
	service adoptionports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service adoptionports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /v1/animals
// List the animals available for adoption
func (api *CatalogAPI) ListAnimals(c *gin.Context) {
	view, err := api.service.ListAnimals(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, adoptionmapper.FromCatalogView(view))
}
