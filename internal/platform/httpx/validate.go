package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct checks a decoded request body against its validate tags and
// writes a 400 problem response when it fails. Returns false on failure.
func ValidateStruct(w http.ResponseWriter, body any) bool {
	err := validate.Struct(body)
	if err == nil {
		return true
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		JSON(w, http.StatusBadRequest, ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Detail: "request body failed validation",
			Fields: fields,
		})
		return false
	}
	Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	return false
}
