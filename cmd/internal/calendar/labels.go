package calendar

import (
	"fmt"
	"time"
)

// WeekdayHeaders is the fixed Monday-first header row of the month grid.
var WeekdayHeaders = []string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

var monthNames = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

var monthAbbrev = [...]string{
	"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
	"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
}

func weekdayName(d Day) string {
	return weekdayNames[d.t.Weekday()]
}

// monthTitle renders e.g. "Juni 2025".
func monthTitle(d Day) string {
	return fmt.Sprintf("%s %d", monthNames[d.t.Month()-1], d.t.Year())
}

// shortDate renders e.g. "23. Juni".
func shortDate(d Day) string {
	return fmt.Sprintf("%02d. %s", d.t.Day(), monthAbbrev[d.t.Month()-1])
}

// longDate renders e.g. "Montag, 23. Juni 2025".
func longDate(d Day) string {
	return fmt.Sprintf("%s, %02d. %s %d", weekdayName(d), d.t.Day(), monthNames[d.t.Month()-1], d.t.Year())
}

// dayTitle renders e.g. "Montag, 23. Juni".
func dayTitle(d Day) string {
	return fmt.Sprintf("%s, %02d. %s", weekdayName(d), d.t.Day(), monthNames[d.t.Month()-1])
}
