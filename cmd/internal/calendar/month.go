package calendar

const (
	gridCells        = 42 // 6 rows x 7 columns
	cellVisibleLimit = 2
)

type MonthCell struct {
	Date         Day           `json:"date"`
	InMonth      bool          `json:"inMonth"`
	IsToday      bool          `json:"isToday"`
	IsSelected   bool          `json:"isSelected"`
	Appointments []Appointment `json:"appointments"`
	Overflow     int           `json:"overflow"`
}

type MonthGrid struct {
	Month    string      `json:"month"`
	Title    string      `json:"title"`
	Previous string      `json:"previous"`
	Next     string      `json:"next"`
	Weekdays []string    `json:"weekdays"`
	Cells    []MonthCell `json:"cells"`

	Selected             Day           `json:"selected"`
	SelectedTitle        string        `json:"selectedTitle"`
	SelectedIsToday      bool          `json:"selectedIsToday"`
	SelectedAppointments []Appointment `json:"selectedAppointments"`
}

// MonthDays returns the 42 days shown for the month containing ref: the
// month itself, preceded by the days back to its Monday and followed by days
// of the next month until the grid is full.
func MonthDays(ref Day) []Day {
	first := ref.FirstOfMonth()
	last := ref.LastOfMonth()

	days := make([]Day, 0, gridCells)
	for i := first.ISOWeekday() - 1; i > 0; i-- {
		days = append(days, first.AddDays(-i))
	}
	for d := first; !d.Start().After(last.Start()); d = d.AddDays(1) {
		days = append(days, d)
	}
	for i := 1; len(days) < gridCells; i++ {
		days = append(days, last.AddDays(i))
	}
	return days
}

// ByDay buckets appointments by their calendar day key, keeping input order
// inside each bucket.
func ByDay(appts []Appointment) map[string][]Appointment {
	out := make(map[string][]Appointment)
	for _, appt := range appts {
		key := appt.Date.Key()
		out[key] = append(out[key], appt)
	}
	return out
}

// BuildMonth lays out the month containing month. Each cell carries at most
// two appointments plus an overflow count; the selected day's full list is
// returned separately for the side panel.
func BuildMonth(month, selected, today Day, appts []Appointment) MonthGrid {
	first := month.FirstOfMonth()
	byDay := ByDay(appts)

	cells := make([]MonthCell, 0, gridCells)
	for _, d := range MonthDays(first) {
		dayAppts := byDay[d.Key()]
		cell := MonthCell{
			Date:         d,
			InMonth:      d.SameMonth(first),
			IsToday:      d.Equal(today),
			IsSelected:   d.Equal(selected),
			Appointments: []Appointment{},
		}
		if len(dayAppts) > cellVisibleLimit {
			cell.Overflow = len(dayAppts) - cellVisibleLimit
			dayAppts = dayAppts[:cellVisibleLimit]
		}
		cell.Appointments = append(cell.Appointments, dayAppts...)
		cells = append(cells, cell)
	}

	selectedAppts := byDay[selected.Key()]
	if selectedAppts == nil {
		selectedAppts = []Appointment{}
	}

	return MonthGrid{
		Month:                first.MonthKey(),
		Title:                monthTitle(first),
		Previous:             first.AddMonths(-1).MonthKey(),
		Next:                 first.AddMonths(1).MonthKey(),
		Weekdays:             WeekdayHeaders,
		Cells:                cells,
		Selected:             selected,
		SelectedTitle:        dayTitle(selected),
		SelectedIsToday:      selected.Equal(today),
		SelectedAppointments: selectedAppts,
	}
}
