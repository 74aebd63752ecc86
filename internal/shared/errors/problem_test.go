package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemDetail_MarshalFlattensExtensions(t *testing.T) {
	problem := NewRejectionProblem("InvalidItem", "unknown item \"PIPA\"")
	problem.Instance = "/v1/adoptions/decisions"

	raw, err := json.Marshal(problem)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "InvalidItem", doc["error"])
	assert.Equal(t, TypeAdoptionRejected, doc["type"])
	assert.EqualValues(t, http.StatusUnprocessableEntity, doc["status"])
	assert.Equal(t, "/v1/adoptions/decisions", doc["instance"])
	assert.NotContains(t, doc, "extensions")
}

func TestProblemDetail_WithExtensionDoesNotMutateTemplate(t *testing.T) {
	_ = ErrAdoptionRejected.WithExtension("error", "InvalidAnimal")
	assert.Nil(t, ErrAdoptionRejected.Extensions)
}

func TestChainedResponder_UsesFirstMatchingMapper(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sentinel := errors.New("sentinel")
	responder := NewChainedResponder("https://shelter.example",
		nil,
		func(err error) (ProblemDetail, bool) {
			if errors.Is(err, sentinel) {
				return ErrBadRequest.WithDetail("mapped"), true
			}
			return ProblemDetail{}, false
		},
	)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/animals", nil)
	responder.RespondError(c, fmt.Errorf("outer: %w", sentinel))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "https://shelter.example"+TypeBadRequest, doc["type"])
	assert.Equal(t, "/v1/animals", doc["instance"])
	assert.Equal(t, "mapped", doc["detail"])
}

func TestChainedResponder_FallsBackToInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	NewChainedResponder("").RespondError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
