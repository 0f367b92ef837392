package calendar

import "sort"

type DayGroup struct {
	Date         Day           `json:"date"`
	Title        string        `json:"title"`
	IsToday      bool          `json:"isToday"`
	Appointments []Appointment `json:"appointments"`
}

// GroupByDay builds the list view: one group per day in order of the day's
// first appearance in appts, each sorted by start time.
func GroupByDay(appts []Appointment, today Day) []DayGroup {
	var order []string
	groups := make(map[string]*DayGroup)
	for _, appt := range appts {
		key := appt.Date.Key()
		g, ok := groups[key]
		if !ok {
			g = &DayGroup{Date: appt.Date, Title: longDate(appt.Date), IsToday: appt.Date.Equal(today)}
			groups[key] = g
			order = append(order, key)
		}
		g.Appointments = append(g.Appointments, appt)
	}

	out := make([]DayGroup, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sort.SliceStable(g.Appointments, func(i, j int) bool {
			return g.Appointments[i].TimeStart < g.Appointments[j].TimeStart
		})
		out = append(out, *g)
	}
	return out
}
