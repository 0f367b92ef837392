package entity

import "time"

// AppointmentQuery is a filter already translated to store constraints:
// empty ids are not constrained, From and To bound the start timestamp
// inclusively.
type AppointmentQuery struct {
	PatientID  string
	CategoryID string
	From       *time.Time
	To         *time.Time
}

func (q AppointmentQuery) IsEmpty() bool {
	return q.PatientID == "" && q.CategoryID == "" && q.From == nil && q.To == nil
}

// Matches evaluates the query in memory with the same semantics a store
// applies natively.
func (q AppointmentQuery) Matches(appt *Appointment) bool {
	if q.PatientID != "" && appt.PatientID != q.PatientID {
		return false
	}
	if q.CategoryID != "" && appt.CategoryID != q.CategoryID {
		return false
	}
	if q.From != nil && appt.Start.Before(*q.From) {
		return false
	}
	if q.To != nil && appt.Start.After(*q.To) {
		return false
	}
	return true
}

// Apply keeps the appointments matching the query, in their original order.
func (q AppointmentQuery) Apply(appts []*Appointment) []*Appointment {
	out := make([]*Appointment, 0, len(appts))
	for _, appt := range appts {
		if q.Matches(appt) {
			out = append(out, appt)
		}
	}
	return out
}
