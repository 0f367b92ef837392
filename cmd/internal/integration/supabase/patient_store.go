package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	supa "github.com/supabase-community/supabase-go"
)

type PatientStore struct {
	client *supa.Client
}

// patientRow mirrors the patients table, whose birth_date is a plain date.
type patientRow struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	BirthDate   string     `json:"birth_date"`
	CareLevel   int        `json:"care_level"`
	Pronoun     string     `json:"pronoun"`
	Email       string     `json:"email"`
	Active      bool       `json:"active"`
	ActiveSince *time.Time `json:"active_since"`
}

func (r *patientRow) toEntity() (*entity.Patient, error) {
	p := &entity.Patient{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		CareLevel: r.CareLevel,
		Pronoun:   r.Pronoun,
		Email:     r.Email,
		Active:    r.Active,
	}
	if r.ActiveSince != nil {
		p.ActiveSince = *r.ActiveSince
	}
	if r.BirthDate != "" {
		birth, err := parseDate(r.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("patient %s: %w", r.ID, err)
		}
		p.BirthDate = birth
	}
	return p, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (s *PatientStore) FindAll(_ context.Context) ([]*entity.Patient, error) {
	rows, err := decode[patientRow](s.client.From(tablePatients).
		Select("*", "", false).
		Order("lastname", ascending).
		Execute())
	if err != nil {
		return nil, err
	}

	patients := make([]*entity.Patient, 0, len(rows))
	for _, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, nil
}

func (s *PatientStore) FindRelatives(_ context.Context, patientID string) ([]*entity.Relative, error) {
	data, count, err := s.client.From(tableRelatives).
		Select("*", "", false).
		Eq("patient_id", patientID).
		Execute()
	return decode[entity.Relative](data, count, err)
}

type CategoryStore struct {
	client *supa.Client
}

func (s *CategoryStore) FindAll(_ context.Context) ([]*entity.Category, error) {
	categories, err := decode[entity.Category](s.client.From(tableCategories).
		Select("*", "", false).
		Execute())
	if err != nil {
		return nil, err
	}
	// A null color never reaches UnmarshalText.
	for _, c := range categories {
		c.Color = entity.ParseColor(string(c.Color))
	}
	return categories, nil
}

type UserStore struct {
	client *supa.Client
}

func (s *UserStore) FindAll(_ context.Context) ([]*entity.User, error) {
	data, count, err := s.client.From(tableUsers).
		Select("*", "", false).
		Order("name", ascending).
		Execute()
	return decode[entity.User](data, count, err)
}
