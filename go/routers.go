package shelterserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-gin-shelter-api/internal/shared/errors"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the API handlers mounted by the router.
type ApiHandleFunctions struct {
	AdoptionAPI AdoptionAPI
	CatalogAPI  CatalogAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	router.NoRoute(func(c *gin.Context) {
		respondProblem(c, apierrors.NewNotFoundProblem("route", c.Request.URL.Path).WithInstance(c.Request.URL.RequestURI()))
	})
	return router
}

// DefaultHandleFunc is the default handler for routes without an implementation.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// Healthz reports liveness.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Healthz",
			http.MethodGet,
			"/healthz",
			Healthz,
		},
		{
			"DecideAdoptions",
			http.MethodPost,
			"/v1/adoptions/decisions",
			handleFunctions.AdoptionAPI.DecideAdoptions,
		},
		{
			"DecideAdoptionsFromQuery",
			http.MethodGet,
			"/v1/adoptions/decisions",
			handleFunctions.AdoptionAPI.DecideAdoptionsFromQuery,
		},
		{
			"ListAnimals",
			http.MethodGet,
			"/v1/animals",
			handleFunctions.CatalogAPI.ListAnimals,
		},
	}
}
