package service

import (
	"strings"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/utils"
)

// CriteriaRequest is a filter submission, from a query string or a body.
// Dates are either plain days or RFC 3339 timestamps.
type CriteriaRequest struct {
	Patient   string `json:"patient" query:"patient"`
	Category  string `json:"category" query:"category"`
	StartDate string `json:"startDate" query:"start_date" validate:"omitempty,calday|iso8601"`
	EndDate   string `json:"endDate" query:"end_date" validate:"omitempty,calday|iso8601"`
}

// AppointmentForm is the create form. Only the shape of dates and times is
// checked; an end before the start is accepted.
type AppointmentForm struct {
	Title     string `json:"title" validate:"max=256"`
	Date      string `json:"date" validate:"required,calday"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
	Location  string `json:"location" validate:"max=256"`
	Notes     string `json:"notes"`
	Category  string `json:"category"`
	Patient   string `json:"patient"`
}

// AppointmentUpdate is the edit form. Absent fields keep their value.
type AppointmentUpdate struct {
	Title     *string `json:"title" validate:"omitempty,max=256"`
	Date      *string `json:"date" validate:"omitempty,calday"`
	StartTime *string `json:"startTime" validate:"omitempty,clock"`
	EndTime   *string `json:"endTime" validate:"omitempty,clock"`
	Location  *string `json:"location" validate:"omitempty,max=256"`
	Notes     *string `json:"notes"`
	Category  *string `json:"category"`
	Patient   *string `json:"patient"`
}

// FormData fills the appointment dialog in view mode.
type FormData struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
	Category  string `json:"category"`
	Patient   string `json:"patient"`
}

type ActivityRequest struct {
	AppointmentID string `json:"appointment" validate:"required"`
	CreatedBy     string `json:"created_by" validate:"required"`
	Type          string `json:"type" validate:"max=64"`
	Content       string `json:"content"`
}

type AssignmentRequest struct {
	AppointmentID string `json:"appointment" validate:"required"`
	UserID        string `json:"user" validate:"required"`
	UserType      string `json:"user_type" validate:"max=64"`
}

func toFormData(appt calendar.Appointment) *FormData {
	return &FormData{
		ID:        appt.ID,
		Title:     appt.Title,
		Date:      appt.Date.Key(),
		StartTime: appt.TimeStart,
		EndTime:   appt.TimeEnd,
		Location:  appt.Location,
		Notes:     strings.Join(appt.Details, "\n"),
		Category:  appt.Category,
		Patient:   appt.Patient,
	}
}

// toCriteria parses a validated request. A plain day means local midnight.
func toCriteria(req *CriteriaRequest, loc *time.Location) (calendar.Criteria, error) {
	start, err := parseBound(req.StartDate, loc)
	if err != nil {
		return calendar.Criteria{}, err
	}
	end, err := parseBound(req.EndDate, loc)
	if err != nil {
		return calendar.Criteria{}, err
	}
	return calendar.Criteria{
		Patient:   req.Patient,
		Category:  req.Category,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func parseBound(value string, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if day, err := calendar.ParseDay(value, loc); err == nil {
		t := day.Start()
		return &t, nil
	}
	return utils.ParseOptionalTime(value)
}
