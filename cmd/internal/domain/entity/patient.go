package entity

import "time"

type Patient struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	Firstname   string    `gorm:"not null" json:"firstname"`
	Lastname    string    `gorm:"not null" json:"lastname"`
	BirthDate   time.Time `json:"birth_date"`
	CareLevel   int       `json:"care_level"`
	Pronoun     string    `json:"pronoun"`
	Email       string    `json:"email"`
	Active      bool      `gorm:"not null" json:"active"`
	ActiveSince time.Time `json:"active_since"`
}

func (p *Patient) FullName() string {
	return p.Firstname + " " + p.Lastname
}

// Relative is a contact person of a patient.
type Relative struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Pronoun   string    `json:"pronoun"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Notes     string    `json:"notes"`
	PatientID string    `gorm:"column:patient_id;index" json:"patient_id"` // References: patients(id)
}
