package supabase

import (
	"context"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils"
	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

type AppointmentStore struct {
	client *supa.Client
}

func (s *AppointmentStore) FindAll(_ context.Context) ([]*entity.Appointment, error) {
	data, count, err := s.client.From(tableAppointments).
		Select("*", "", false).
		Order("start", ascending).
		Execute()
	return decode[entity.Appointment](data, count, err)
}

// FindFiltered pushes what it can to PostgREST and finishes in memory. The
// query builder keys filters by column, so a second bound on start would
// replace the first.
func (s *AppointmentStore) FindFiltered(_ context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error) {
	query := s.client.From(tableAppointments).Select("*", "", false)
	if q.PatientID != "" {
		query = query.Eq("patient", q.PatientID)
	}
	if q.CategoryID != "" {
		query = query.Eq("category", q.CategoryID)
	}
	if q.From != nil {
		query = query.Gte("start", utils.FormatTime(*q.From))
	} else if q.To != nil {
		query = query.Lte("start", utils.FormatTime(*q.To))
	}

	appts, err := decode[entity.Appointment](query.Order("start", ascending).Execute())
	if err != nil {
		return nil, err
	}
	return q.Apply(appts), nil
}

func (s *AppointmentStore) FindByID(_ context.Context, id string) ([]*entity.Appointment, error) {
	data, count, err := s.client.From(tableAppointments).
		Select("*", "", false).
		Eq("id", id).
		Limit(2, "").
		Execute()
	return decode[entity.Appointment](data, count, err)
}

func (s *AppointmentStore) Create(_ context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	data, count, err := s.client.From(tableAppointments).
		Insert(appt, false, "", returnRepresentation, "").
		Execute()
	return first[entity.Appointment](decode[entity.Appointment](data, count, err))
}

// Update returns nil without error when no row has the id.
func (s *AppointmentStore) Update(_ context.Context, id string, cols map[string]any) (*entity.Appointment, error) {
	for col, v := range cols {
		if t, ok := v.(time.Time); ok {
			cols[col] = t.UTC()
		}
	}
	data, count, err := s.client.From(tableAppointments).
		Update(cols, returnRepresentation, "").
		Eq("id", id).
		Execute()
	return first[entity.Appointment](decode[entity.Appointment](data, count, err))
}

func (s *AppointmentStore) Delete(_ context.Context, id string) error {
	_, _, err := s.client.From(tableAppointments).
		Delete("", "").
		Eq("id", id).
		Execute()
	return err
}
