package calendar

import (
	"sort"
	"time"

	"github.com/labstack/gommon/log"
)

const minutesPerDay = 24 * 60

// Scale maps the 1440 minutes of a day linearly onto Extent units.
type Scale struct {
	Extent         float64 `json:"extent"`
	MinBlockHeight float64 `json:"minBlockHeight"`
}

// DefaultScale is one unit per minute with a 25 unit minimum block.
var DefaultScale = Scale{Extent: 1440, MinBlockHeight: 25}

func (s Scale) Position(minutes int) float64 {
	return float64(minutes) * s.Extent / minutesPerDay
}

// Block is an appointment placed on the week's time axis. DurationMinutes is
// end minus start as wall-clock minutes; an appointment ending after
// midnight yields a negative duration, which the minimum height covers.
type Block struct {
	Appointment
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
	DurationMinutes int     `json:"durationMinutes"`
}

type HourSlot struct {
	Label string  `json:"label"`
	Top   float64 `json:"top"`
}

type WeekDay struct {
	Date       Day     `json:"date"`
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	IsToday    bool    `json:"isToday"`
	IsSelected bool    `json:"isSelected"`
	Blocks     []Block `json:"blocks"`
}

// TimeMarker is the "now" line of the week view.
type TimeMarker struct {
	Top   float64 `json:"top"`
	Label string  `json:"label"`
}

type WeekGrid struct {
	Start  Day         `json:"start"`
	End    Day         `json:"end"`
	Scale  Scale       `json:"scale"`
	Hours  []HourSlot  `json:"hours"`
	Days   []WeekDay   `json:"days"`
	Marker *TimeMarker `json:"marker"`
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d Day) Day {
	return d.AddDays(1 - d.ISOWeekday())
}

func WeekDays(d Day) []Day {
	start := WeekStart(d)
	days := make([]Day, 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// PlaceBlock positions appt on the scale. TimeStart and TimeEnd are HH:MM
// clocks as produced by the Mapper; a time that does not parse is logged and
// counts as midnight.
func (s Scale) PlaceBlock(appt Appointment) Block {
	start := clockMinutes(appt.ID, appt.TimeStart)
	end := clockMinutes(appt.ID, appt.TimeEnd)
	duration := end - start

	height := s.Position(duration)
	if height < s.MinBlockHeight {
		height = s.MinBlockHeight
	}
	return Block{
		Appointment:     appt,
		Top:             s.Position(start),
		Height:          height,
		DurationMinutes: duration,
	}
}

func clockMinutes(id, clock string) int {
	minutes, err := MinutesSinceMidnight(clock)
	if err != nil {
		log.Warnf("appointment %s: placing at midnight: %v", id, err)
		return 0
	}
	return minutes
}

// CurrentTimeMarker returns the marker for now, or nil when the week
// starting at weekStart does not contain now's day.
func CurrentTimeMarker(weekStart Day, now time.Time, s Scale) *TimeMarker {
	loc := weekStart.Start().Location()
	today := DayOf(now, loc)
	if today.Start().Before(weekStart.Start()) || !today.Start().Before(weekStart.AddDays(7).Start()) {
		return nil
	}
	local := now.In(loc)
	return &TimeMarker{
		Top:   s.Position(local.Hour()*60 + local.Minute()),
		Label: local.Format("15:04"),
	}
}

// BuildWeek lays out the Monday-to-Sunday week containing selected.
func BuildWeek(selected Day, now time.Time, appts []Appointment, s Scale) WeekGrid {
	loc := selected.Start().Location()
	today := DayOf(now, loc)
	byDay := ByDay(appts)

	hours := make([]HourSlot, 24)
	for h := range hours {
		hours[h] = HourSlot{Label: time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"), Top: s.Position(h * 60)}
	}

	dates := WeekDays(selected)
	days := make([]WeekDay, len(dates))
	for i, d := range dates {
		blocks := make([]Block, 0, len(byDay[d.Key()]))
		for _, appt := range byDay[d.Key()] {
			blocks = append(blocks, s.PlaceBlock(appt))
		}
		sort.SliceStable(blocks, func(a, b int) bool { return blocks[a].Top < blocks[b].Top })
		days[i] = WeekDay{
			Date:       d,
			Name:       weekdayName(d),
			Label:      shortDate(d),
			IsToday:    d.Equal(today),
			IsSelected: d.Equal(selected),
			Blocks:     blocks,
		}
	}

	return WeekGrid{
		Start:  dates[0],
		End:    dates[6],
		Scale:  s,
		Hours:  hours,
		Days:   days,
		Marker: CurrentTimeMarker(dates[0], now, s),
	}
}
