package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	title := "  Kontrolle \n"
	req := struct {
		Name  string
		Title *string
		Tags  []string
		Empty *string
		Count int
	}{
		Name:  "  Hans ",
		Title: &title,
		Tags:  []string{" a", "b "},
		Count: 3,
	}

	Sanitize(&req)

	assert.Equal(t, "Hans", req.Name)
	assert.Equal(t, "Kontrolle", *req.Title)
	assert.Equal(t, []string{"a", "b"}, req.Tags)
	assert.Nil(t, req.Empty)
	assert.Equal(t, 3, req.Count)
}

func TestSanitize_PanicsOnNonPointer(t *testing.T) {
	assert.Panics(t, func() { Sanitize(struct{}{}) })
	assert.Panics(t, func() {
		s := "x"
		Sanitize(&s)
	})
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2025-06-23T10:45:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-23T08:45:00Z", FormatTime(got))

	_, err = ParseTime("2025-06-23")
	assert.Error(t, err)
}

func TestParseOptionalTime(t *testing.T) {
	got, err := ParseOptionalTime("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalTime("2025-06-23T08:45:00.5Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 500*time.Millisecond, time.Duration(got.Nanosecond()))
}

func TestFormatTimeKeepsFraction(t *testing.T) {
	at := time.Date(2025, 6, 23, 10, 45, 0, 500_000_000, time.FixedZone("CEST", 2*3600))
	assert.Equal(t, "2025-06-23T08:45:00.5Z", FormatTime(at))
	assert.Equal(t, time.UTC, NowUTC().Location())
}
