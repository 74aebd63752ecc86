package shelterserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/adapters/memory"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application"
	adoptiontypes "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/application/types"
	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	apierrors "github.com/Apurer/go-gin-shelter-api/internal/shared/errors"
)

func newTestRouter(t *testing.T, repo adoptionports.CatalogRepository, workflows adoptionports.WorkflowOrchestrator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := application.NewService(repo)
	return NewRouterWithGinEngine(gin.New(), ApiHandleFunctions{
		AdoptionAPI: NewAdoptionAPI(svc, workflows),
		CatalogAPI:  NewCatalogAPI(svc),
	})
}

func perform(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	return doc
}

func TestDecideAdoptions_Post(t *testing.T) {
	router := newTestRouter(t, memory.NewCatalogRepository(), nil)

	tests := []struct {
		name      string
		body      string
		status    int
		decisions []string
		errorKind string
	}{
		{
			name:      "split between adopters",
			body:      `{"firstAdopterItems":"RATO,BOLA","secondAdopterItems":"RATO,NOVELO","animals":"Rex,Fofo"}`,
			status:    http.StatusOK,
			decisions: []string{"Fofo - shelter", "Rex - person 1"},
		},
		{
			name:      "both adopters take mimi so she stays",
			body:      `{"firstAdopterItems":"BOLA,LASER","secondAdopterItems":"BOLA,NOVELO,RATO,LASER","animals":"Mimi,Fofo,Rex,Bola"}`,
			status:    http.StatusOK,
			decisions: []string{"Bola - shelter", "Fofo - person 2", "Mimi - shelter", "Rex - shelter"},
		},
		{
			name:      "unknown animal",
			body:      `{"firstAdopterItems":"CAIXA,RATO","secondAdopterItems":"RATO,BOLA","animals":"Lulu"}`,
			status:    http.StatusUnprocessableEntity,
			errorKind: "InvalidAnimal",
		},
		{
			name:      "unknown item",
			body:      `{"firstAdopterItems":"RATO,DINOSSAURO","secondAdopterItems":"RATO,BOLA","animals":"Rex"}`,
			status:    http.StatusUnprocessableEntity,
			errorKind: "InvalidItem",
		},
		{
			name:      "empty animal list",
			body:      `{"firstAdopterItems":"RATO","secondAdopterItems":"BOLA","animals":""}`,
			status:    http.StatusUnprocessableEntity,
			errorKind: "InvalidAnimal",
		},
		{
			name:   "malformed json",
			body:   `{"animals":`,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := perform(router, http.MethodPost, "/v1/adoptions/decisions", tc.body)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			doc := decodeMap(t, rec)
			if tc.status == http.StatusOK {
				got := make([]string, 0)
				for _, line := range doc["decisions"].([]any) {
					got = append(got, line.(string))
				}
				assert.Equal(t, tc.decisions, got)
				assert.NotContains(t, doc, "error")
				return
			}
			assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
			assert.NotContains(t, doc, "decisions")
			if tc.errorKind != "" {
				assert.Equal(t, tc.errorKind, doc["error"])
			}
		})
	}
}

func TestDecideAdoptions_GetQuery(t *testing.T) {
	router := newTestRouter(t, memory.NewCatalogRepository(), nil)

	query := url.Values{}
	query.Set("firstAdopterItems", "RATO,BOLA")
	query.Set("secondAdopterItems", "RATO,NOVELO")
	query.Set("animals", "Rex,Fofo")

	rec := perform(router, http.MethodGet, "/v1/adoptions/decisions?"+query.Encode(), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"decisions":["Fofo - shelter","Rex - person 1"]}`, rec.Body.String())
}

func TestDecideAdoptions_GetRejectsRepeatedParameter(t *testing.T) {
	router := newTestRouter(t, memory.NewCatalogRepository(), nil)

	rec := perform(router, http.MethodGet, "/v1/adoptions/decisions?animals=Rex&animals=Fofo", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stubOrchestrator struct {
	calls int
	err   error
}

func (s *stubOrchestrator) Decide(_ context.Context, _ adoptiontypes.DecideInput) (*adoptiontypes.DecisionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &adoptiontypes.DecisionResult{Decisions: []domain.Decision{{Animal: "Rex", Destination: domain.DestinationSecondAdopter}}}, nil
}

func TestDecideAdoptions_PrefersWorkflows(t *testing.T) {
	workflows := &stubOrchestrator{}
	router := newTestRouter(t, memory.NewCatalogRepository(), workflows)

	rec := perform(router, http.MethodPost, "/v1/adoptions/decisions", `{"animals":"Rex"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, workflows.calls)
	assert.JSONEq(t, `{"decisions":["Rex - person 2"]}`, rec.Body.String())
}

func TestDecideAdoptions_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"catalog unavailable", adoptionports.ErrCatalogUnavailable, http.StatusServiceUnavailable},
		{"unexpected", errors.New("temporal exploded"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t, memory.NewCatalogRepository(), &stubOrchestrator{err: tc.err})
			rec := perform(router, http.MethodPost, "/v1/adoptions/decisions", `{"animals":"Rex"}`)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
		})
	}
}

func TestListAnimals(t *testing.T) {
	router := newTestRouter(t, memory.NewCatalogRepository(), nil)

	rec := perform(router, http.MethodGet, "/v1/animals", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Animals []struct {
			Name           string   `json:"name"`
			Species        string   `json:"species"`
			FavoriteItems  []string `json:"favoriteItems"`
			NeedsCompanion bool     `json:"needsCompanion"`
		} `json:"animals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Animals, 7)
	assert.Equal(t, "Rex", body.Animals[0].Name)
	assert.Equal(t, "tortoise", body.Animals[6].Species)
	assert.Equal(t, []string{"SKATE", "RATO"}, body.Animals[6].FavoriteItems)
	assert.True(t, body.Animals[6].NeedsCompanion)
}

func TestListAnimals_CatalogUnavailable(t *testing.T) {
	router := newTestRouter(t, memory.NewCatalogRepositoryWith(nil), nil)

	rec := perform(router, http.MethodGet, "/v1/animals", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthzAndNoRoute(t *testing.T) {
	router := newTestRouter(t, memory.NewCatalogRepository(), nil)

	rec := perform(router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = perform(router, http.MethodGet, "/v2/pet/1?status=available", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	doc := decodeMap(t, rec)
	assert.Equal(t, "/v2/pet/1?status=available", doc["instance"])
	assert.Equal(t, apierrors.TypeNotFound, doc["type"])
}
