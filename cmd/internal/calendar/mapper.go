package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
)

// Appointment is the display form consumed by the list, week and month
// views. It is rebuilt from the raw record on every read and never stored.
type Appointment struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      Day      `json:"date"`
	TimeStart string   `json:"timeStart"`
	TimeEnd   string   `json:"timeEnd"`
	Location  string   `json:"location,omitempty"`
	Details   []string `json:"details,omitempty"`
	Color     string   `json:"color"`
	Patient   string   `json:"patient,omitempty"`
	Category  string   `json:"category,omitempty"`
}

// Mapper turns raw records into display appointments in a fixed location.
type Mapper struct {
	loc *time.Location
}

func NewMapper(loc *time.Location) *Mapper {
	return &Mapper{loc: loc}
}

func (m *Mapper) Location() *time.Location {
	return m.loc
}

// ToDisplay is pure: the same record, patients and categories always give
// the same display appointment. Unknown patient or category ids are not an
// error, they just contribute nothing.
func (m *Mapper) ToDisplay(rec *entity.Appointment, patients []*entity.Patient, categories []*entity.Category) Appointment {
	var details []string
	if patient := findPatient(patients, rec.PatientID); patient != nil {
		details = append(details, fmt.Sprintf("Patient: %s %s", patient.Firstname, patient.Lastname))
	}
	if rec.Notes != "" {
		details = append(details, rec.Notes)
	}

	color := entity.ColorBlue.Display()
	if category := findCategory(categories, rec.CategoryID); category != nil {
		color = category.Color.Display()
	}

	return Appointment{
		ID:        rec.ID,
		Title:     rec.Title,
		Date:      DayOf(rec.Start, m.loc),
		TimeStart: Clock(rec.Start, m.loc),
		TimeEnd:   Clock(rec.End, m.loc),
		Location:  rec.Location,
		Details:   details,
		Color:     color,
		Patient:   rec.PatientID,
		Category:  rec.CategoryID,
	}
}

func (m *Mapper) ToDisplayAll(recs []*entity.Appointment, patients []*entity.Patient, categories []*entity.Category) []Appointment {
	out := make([]Appointment, len(recs))
	for i, rec := range recs {
		out[i] = m.ToDisplay(rec, patients, categories)
	}
	return out
}

func findPatient(patients []*entity.Patient, id string) *entity.Patient {
	for _, p := range patients {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findCategory(categories []*entity.Category, id string) *entity.Category {
	for _, c := range categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Clock formats t as local 24h HH:MM.
func Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// MinutesSinceMidnight parses HH:MM. Hours run 0-23 and minutes 0-59.
func MinutesSinceMidnight(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return hours*60 + minutes, nil
}
