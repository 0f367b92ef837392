package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day in a given location, held at local midnight.
type Day struct {
	t time.Time
}

// DayOf returns the calendar day t falls on in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	local := t.In(loc)
	return Day{t: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)}
}

func NewDay(year int, month time.Month, day int, loc *time.Location) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, loc)}
}

// ParseDay parses YYYY-MM-DD as a day in loc.
func ParseDay(value string, loc *time.Location) (Day, error) {
	t, err := time.ParseInLocation(dayLayout, value, loc)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q, expected YYYY-MM-DD", value)
	}
	return Day{t: t}, nil
}

// ParseMonth parses YYYY-MM and returns the first day of that month in loc.
func ParseMonth(value string, loc *time.Location) (Day, error) {
	t, err := time.ParseInLocation("2006-01", value, loc)
	if err != nil {
		return Day{}, fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	return Day{t: t}, nil
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// Key is the YYYY-MM-DD form used to bucket appointments by day.
func (d Day) Key() string {
	return d.t.Format(dayLayout)
}

func (d Day) String() string {
	return d.Key()
}

// Start is local midnight of the day.
func (d Day) Start() time.Time {
	return d.t
}

// End is the last representable millisecond of the day, 23:59:59.999.
func (d Day) End() time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 23, 59, 59, 999_000_000, d.t.Location())
}

// At combines the day with a local wall-clock time of the form HH:MM.
func (d Day) At(clock string) (time.Time, error) {
	minutes, err := MinutesSinceMidnight(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), minutes/60, minutes%60, 0, 0, d.t.Location()), nil
}

// AddDays moves by calendar days, so DST changes never shift the result off
// midnight.
func (d Day) AddDays(n int) Day {
	return Day{t: time.Date(d.t.Year(), d.t.Month(), d.t.Day()+n, 0, 0, 0, 0, d.t.Location())}
}

// ISOWeekday is 1 for Monday through 7 for Sunday.
func (d Day) ISOWeekday() int {
	wd := int(d.t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func (d Day) Equal(other Day) bool {
	return d.Key() == other.Key()
}

func (d Day) SameMonth(other Day) bool {
	return d.t.Year() == other.t.Year() && d.t.Month() == other.t.Month()
}

func (d Day) FirstOfMonth() Day {
	return Day{t: time.Date(d.t.Year(), d.t.Month(), 1, 0, 0, 0, 0, d.t.Location())}
}

func (d Day) LastOfMonth() Day {
	return Day{t: time.Date(d.t.Year(), d.t.Month()+1, 0, 0, 0, 0, 0, d.t.Location())}
}

// AddMonths moves to the first day of the month n months away.
func (d Day) AddMonths(n int) Day {
	return Day{t: time.Date(d.t.Year(), d.t.Month()+time.Month(n), 1, 0, 0, 0, 0, d.t.Location())}
}

func (d Day) MonthKey() string {
	return d.t.Format("2006-01")
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Key())
}
