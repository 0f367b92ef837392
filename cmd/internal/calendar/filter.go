package calendar

import (
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
)

// All selects every patient or category.
const All = "all"

// Criteria is a filter submission. Every predicate is optional; set ones
// are combined with AND.
type Criteria struct {
	Patient   string     `json:"patient,omitempty"`
	Category  string     `json:"category,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// IsEmpty reports whether the criteria select everything. "all" counts as
// absent.
func (c Criteria) IsEmpty() bool {
	return !active(c.Patient) && !active(c.Category) && c.StartDate == nil && c.EndDate == nil
}

// Query translates the criteria to store constraints. StartDate bounds the
// start timestamp at full precision; EndDate is widened to 23:59:59.999 of
// its day in loc.
func (c Criteria) Query(loc *time.Location) entity.AppointmentQuery {
	var q entity.AppointmentQuery
	if active(c.Patient) {
		q.PatientID = c.Patient
	}
	if active(c.Category) {
		q.CategoryID = c.Category
	}
	if c.StartDate != nil {
		from := *c.StartDate
		q.From = &from
	}
	if c.EndDate != nil {
		to := DayOf(*c.EndDate, loc).End()
		q.To = &to
	}
	return q
}

// Filter applies the criteria in memory. Empty criteria return appts as is.
func Filter(appts []*entity.Appointment, c Criteria, loc *time.Location) []*entity.Appointment {
	if c.IsEmpty() {
		return appts
	}
	return c.Query(loc).Apply(appts)
}

func active(id string) bool {
	return id != "" && id != All
}
