package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
	Label       string    `gorm:"not null" json:"label"`
	Description string    `json:"description"`
	Color       Color     `gorm:"type:varchar(16)" json:"color"`
	Icon        string    `json:"icon"`
}

// Color is the closed palette an appointment can be tagged with. Values read
// from a store are normalized once, when the category is loaded.
type Color string

const (
	ColorGreen   Color = "green"
	ColorPurple  Color = "purple"
	ColorBlue    Color = "blue"
	ColorDefault Color = "default"
)

// ParseColor maps a stored color (with or without a leading '#') onto the
// palette. Anything outside the palette, including the empty string, becomes
// ColorDefault.
func ParseColor(raw string) Color {
	switch Color(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "#"))) {
	case ColorGreen:
		return ColorGreen
	case ColorPurple:
		return ColorPurple
	case ColorBlue:
		return ColorBlue
	default:
		return ColorDefault
	}
}

// Display is the tag shown by the calendar views. Default renders as blue.
func (c Color) Display() string {
	if c == ColorGreen || c == ColorPurple {
		return string(c)
	}
	return string(ColorBlue)
}

func (c *Color) UnmarshalText(text []byte) error {
	*c = ParseColor(string(text))
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *Color) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*c = ColorDefault
	case string:
		*c = ParseColor(v)
	case []byte:
		*c = ParseColor(string(v))
	default:
		return fmt.Errorf("color: unsupported type %T", value)
	}
	return nil
}

func (c Color) Value() (driver.Value, error) {
	return string(c), nil
}
