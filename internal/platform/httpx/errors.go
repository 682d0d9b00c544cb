package httpx

import (
	"errors"
	"net/http"

	"github.com/meridian-console/meridian-console/internal/shared"
)

// RespondError maps the data-access error taxonomy to an RFC7807 response.
func RespondError(w http.ResponseWriter, err error) {
	var missing *shared.MissingParameterError
	if errors.As(err, &missing) {
		JSON(w, http.StatusBadRequest, ProblemDetail{
			Title:  "Missing Parameters",
			Status: http.StatusBadRequest,
			Detail: missing.Error(),
			Fields: missing.Fields,
		})
		return
	}

	switch shared.ClassifyError(err) {
	case shared.KindNotFound:
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case shared.KindConflict:
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	case shared.KindForbidden:
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	case shared.KindAuthRequired:
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case shared.KindServerError:
		Problem(w, http.StatusBadGateway, "Upstream Error", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
