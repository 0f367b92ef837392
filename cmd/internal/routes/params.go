package routes

import (
	"strconv"
	"strings"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

// mockParam reads the optional ?mock= override of the data source.
func mockParam(c echo.Context) (*bool, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam("mock"))
	if raw == "" {
		return nil, nil
	}
	mock, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("mock", "a boolean")
	}
	return &mock, nil
}

func requiredParam(c echo.Context, name string) (string, apierror.ErrorResponse) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		return "", apierror.NewMissingParamError(name)
	}
	return value, nil
}

// dayParam reads an optional YYYY-MM-DD query parameter.
func dayParam(c echo.Context, name string, loc *time.Location) (*calendar.Day, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	day, err := calendar.ParseDay(raw, loc)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError(name, "a day in YYYY-MM-DD format")
	}
	return &day, nil
}

// monthParam reads an optional YYYY-MM query parameter.
func monthParam(c echo.Context, name string, loc *time.Location) (*calendar.Day, apierror.ErrorResponse) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	month, err := calendar.ParseMonth(raw, loc)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError(name, "a month in YYYY-MM format")
	}
	return &month, nil
}
