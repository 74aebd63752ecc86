package shelterserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/domain"
	adoptionports "github.com/Apurer/go-gin-shelter-api/internal/domains/adoption/ports"
	apierrors "github.com/Apurer/go-gin-shelter-api/internal/shared/errors"
)

var problemResponder = apierrors.NewChainedResponder("",
	mapRejection,
	mapCatalogUnavailable,
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	problemResponder.Respond(c, problem)
}

func respondBadRequest(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problemResponder.BadRequest(c, err.Error())
}

// respondServiceError converts adoption errors into RFC 7807 responses.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problemResponder.RespondError(c, err)
}

func mapRejection(err error) (apierrors.ProblemDetail, bool) {
	var rejection *domain.RejectionError
	if !errors.As(err, &rejection) {
		return apierrors.ProblemDetail{}, false
	}
	return apierrors.NewRejectionProblem(string(rejection.Kind), rejection.Error()), true
}

func mapCatalogUnavailable(err error) (apierrors.ProblemDetail, bool) {
	if !errors.Is(err, adoptionports.ErrCatalogUnavailable) {
		return apierrors.ProblemDetail{}, false
	}
	return apierrors.ErrServiceUnavailable.WithDetail(err.Error()), true
}
