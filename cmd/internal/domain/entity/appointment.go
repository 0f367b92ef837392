package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Appointment is the persisted form of an appointment. It is the source of
// truth; the calendar display form is derived from it on every read.
type Appointment struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	Start       time.Time      `gorm:"not null;index" json:"start"`
	End         time.Time      `gorm:"not null" json:"end"`
	Location    string         `json:"location"`
	PatientID   string         `gorm:"column:patient;index" json:"patient"`   // References: patients(id)
	CategoryID  string         `gorm:"column:category;index" json:"category"` // References: categories(id)
	Notes       string         `json:"notes"`
	Title       string         `gorm:"not null" json:"title"`
	Attachments datatypes.JSON `json:"attachments,omitempty"`
}

// AttachmentList decodes the attachment column. Legacy rows hold a single
// file name instead of a list.
func (a *Appointment) AttachmentList() []string {
	if len(a.Attachments) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(a.Attachments, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(a.Attachments, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}

// SetAttachments stores the given file names, clearing the column when empty.
func (a *Appointment) SetAttachments(files []string) {
	if len(files) == 0 {
		a.Attachments = nil
		return
	}
	raw, _ := json.Marshal(files)
	a.Attachments = datatypes.JSON(raw)
}

// AppointmentPatch carries the fields of a partial update. Nil fields are left
// untouched.
type AppointmentPatch struct {
	Title       *string    `json:"title,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Location    *string    `json:"location,omitempty"`
	PatientID   *string    `json:"patient,omitempty"`
	CategoryID  *string    `json:"category,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Attachments []string   `json:"attachments,omitempty"`
}

// Columns returns the patch as a column->value map, suitable for partial
// updates against a store.
func (p *AppointmentPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Start != nil {
		cols["start"] = *p.Start
	}
	if p.End != nil {
		cols["end"] = *p.End
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.PatientID != nil {
		cols["patient"] = *p.PatientID
	}
	if p.CategoryID != nil {
		cols["category"] = *p.CategoryID
	}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.Attachments != nil {
		raw, _ := json.Marshal(p.Attachments)
		cols["attachments"] = datatypes.JSON(raw)
	}
	return cols
}

// Apply merges the patch onto appt.
func (p *AppointmentPatch) Apply(appt *Appointment) {
	if p.Title != nil {
		appt.Title = *p.Title
	}
	if p.Start != nil {
		appt.Start = *p.Start
	}
	if p.End != nil {
		appt.End = *p.End
	}
	if p.Location != nil {
		appt.Location = *p.Location
	}
	if p.PatientID != nil {
		appt.PatientID = *p.PatientID
	}
	if p.CategoryID != nil {
		appt.CategoryID = *p.CategoryID
	}
	if p.Notes != nil {
		appt.Notes = *p.Notes
	}
	if p.Attachments != nil {
		appt.SetAttachments(p.Attachments)
	}
}
