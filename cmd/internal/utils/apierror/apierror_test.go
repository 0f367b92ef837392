package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestFromValidationError(t *testing.T) {
	type req struct {
		Title string `validate:"required"`
		Notes string `validate:"max=3"`
	}
	err := validator.New().Struct(req{Notes: "too long"})

	apierr := FromValidationError(err)

	assert.Equal(t, http.StatusBadRequest, apierr.Code())
	assert.Equal(t, map[string]string{"Title": "required", "Notes": "max"}, apierr.Fields)
}

func TestFromValidationError_OtherError(t *testing.T) {
	assert.Same(t, MalformedBodyError, FromValidationError(errors.New("boom")))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, `Missing required parameter "month"`, NewMissingParamError("month").Error())
	assert.Equal(t, http.StatusBadRequest, NewInvalidParamTypeError("mock", "a boolean").Code())
	assert.Equal(t, http.StatusNotFound, NotFoundError.Code())
}
