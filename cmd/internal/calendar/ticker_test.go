package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerTicker_EmitsUntilEmitFails(t *testing.T) {
	errStop := errors.New("stop")
	minute := 0
	ticker := MarkerTicker{
		Week:     NewDay(2025, time.June, 23, time.UTC),
		Scale:    DefaultScale,
		Interval: time.Millisecond,
		Now: func() time.Time {
			minute++
			return time.Date(2025, 6, 24, 10, minute, 0, 0, time.UTC)
		},
	}

	var got []string
	err := ticker.Run(context.Background(), func(m *TimeMarker) error {
		require.NotNil(t, m)
		got = append(got, m.Label)
		if len(got) == 3 {
			return errStop
		}
		return nil
	})

	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []string{"10:01", "10:02", "10:03"}, got)
}

func TestMarkerTicker_StopsOnContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	ticker := MarkerTicker{
		Week:  NewDay(2025, time.June, 30, time.UTC),
		Scale: DefaultScale,
		Now:   func() time.Time { return time.Date(2025, 6, 24, 10, 0, 0, 0, time.UTC) },
	}
	err := ticker.Run(ctx, func(m *TimeMarker) error {
		calls++
		assert.Nil(t, m, "week does not contain today")
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}
