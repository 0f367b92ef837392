package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is an error rendered as the JSON body of a failed request.
type ErrorResponse interface {
	error
	Code() int
}

type APIError struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Code() int {
	return e.Status
}

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed request body")
	NotFoundError       = NewSimple(http.StatusNotFound, "Resource not found")
	AmbiguousIDError    = NewSimple(http.StatusConflict, "More than one record shares this id")
	StoreError          = NewSimple(http.StatusBadGateway, "The data store could not complete the request")
	SessionNotFound     = NewSimple(http.StatusNotFound, "View session not found")
)

func NewSimple(code int, msg string) *APIError {
	return &APIError{Status: code, Message: msg}
}

func NewMissingParamError(param string) *APIError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter %q", param))
}

func NewInvalidParamTypeError(param, expected string) *APIError {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter %q must be %s", param, expected))
}

// FromValidationError lists the failed tag per field. Errors that do not
// come from the validator are reported as a malformed body.
func FromValidationError(err error) *APIError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	}
}
