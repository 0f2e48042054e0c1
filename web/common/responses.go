package common

import (
	stderrors "errors"
	"net/http"

	"github.com/Shin-da/ojt-tracking-system-sub000/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}

type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}

// MapError turns a business error into its HTTP status and response body.
// Unknown errors come back as a 500 so infrastructure failures are never
// mistaken for bad input.
func MapError(err error) (int, *ErrorResponse) {
	var def errors.Definition
	if !stderrors.As(err, &def) {
		return http.StatusInternalServerError, &ErrorResponse{
			Code:    errors.StoreUnavailable.Code,
			Message: err.Error(),
		}
	}

	status := http.StatusInternalServerError
	switch def.Code {
	case errors.InvalidTimeRange.Code,
		errors.DuplicateOrInvalid.Code,
		errors.InvalidConfiguration.Code,
		errors.InvalidRequest.Code:
		status = http.StatusBadRequest
	case errors.NotFound.Code:
		status = http.StatusNotFound
	case errors.Unauthorized.Code:
		status = http.StatusUnauthorized
	case errors.StoreUnavailable.Code:
		status = http.StatusServiceUnavailable
	}

	return status, &ErrorResponse{Code: def.Code, Message: def.Message}
}
