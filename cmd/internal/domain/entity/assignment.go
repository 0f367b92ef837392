package entity

import "time"

// User is a staff member that can be assigned to appointments.
type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Assignment links a user to an appointment.
type Assignment struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	AppointmentID string    `gorm:"column:appointment;not null;index" json:"appointment"` // References: appointments(id)
	UserID        string    `gorm:"column:user;not null" json:"user"`                     // References: users(id)
	UserType      string    `json:"user_type"`
}

func (Assignment) TableName() string {
	return "appointment_assignee"
}

// Activity is a note, document or reminder attached to an appointment.
type Activity struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	CreatedBy     string    `gorm:"not null" json:"created_by"` // References: users(id)
	AppointmentID string    `gorm:"column:appointment;not null;index" json:"appointment"`
	Type          string    `json:"type"`
	Content       string    `json:"content"`
}

func (Activity) TableName() string {
	return "activities"
}
