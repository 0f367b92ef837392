package utils

import (
	"reflect"
	"strings"
	"time"
)

// FormatTime renders t in UTC as RFC 3339, keeping fractional seconds.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseTime accepts RFC 3339 timestamps, with or without fractional seconds.
func ParseTime(rfc string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, rfc)
}

// ParseOptionalTime parses rfc when it is set and returns nil otherwise.
func ParseOptionalTime(rfc string) (*time.Time, error) {
	if rfc == "" {
		return nil, nil
	}
	t, err := ParseTime(rfc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Sanitize trims every string field of the struct o points to, including
// string slices and optional (*string) fields.
func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.String {
				field.Elem().SetString(sanitizeString(field.Elem().String()))
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
