package validators

import (
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom tags used by request structs.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("iso8601", IsIso8601)
	_ = validate.RegisterValidation("calday", IsCalendarDay)
	_ = validate.RegisterValidation("clock", IsClock)
}

// IsIso8601 accepts RFC 3339 timestamps.
func IsIso8601(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339Nano, fl.Field().String())
	return err == nil
}

// IsCalendarDay accepts YYYY-MM-DD.
func IsCalendarDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

// IsClock accepts 24h HH:MM.
func IsClock(fl validator.FieldLevel) bool {
	_, err := calendar.MinutesSinceMidnight(fl.Field().String())
	return err == nil
}
