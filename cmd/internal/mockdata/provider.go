package mockdata

import (
	"context"
	"fmt"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils"
	"github.com/labstack/gommon/log"
)

// Provider serves the bootstrap dataset. Writes are simulated: they are
// echoed back to the caller and never change what later reads return, so
// anything created in mock mode is gone on the next reload.
type Provider struct {
	data *Dataset
	now  func() time.Time
}

func NewProvider() *Provider {
	return &Provider{data: NewDataset(), now: utils.NowUTC}
}

// NewProviderWithClock is NewProvider with a fixed time source for the
// simulated write timestamps.
func NewProviderWithClock(now func() time.Time) *Provider {
	return &Provider{data: NewDataset(), now: now}
}

func (p *Provider) syntheticID() string {
	return fmt.Sprintf("mock-id-%d", p.now().UnixMilli())
}

func (p *Provider) ListAppointments(_ context.Context) ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, len(p.data.Appointments))
	for i, appt := range p.data.Appointments {
		out[i] = copyAppointment(appt)
	}
	return out, nil
}

func (p *Provider) FilterAppointments(ctx context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error) {
	all, _ := p.ListAppointments(ctx)
	return q.Apply(all), nil
}

func (p *Provider) GetAppointment(_ context.Context, id string) (*entity.Appointment, error) {
	for _, appt := range p.data.Appointments {
		if appt.ID == id {
			return copyAppointment(appt), nil
		}
	}
	return nil, nil
}

func (p *Provider) CreateAppointment(_ context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	log.Info("mock data: appointment creation simulated")
	created := copyAppointment(appt)
	if created.ID == "" {
		created.ID = p.syntheticID()
	}
	now := p.now()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	created.UpdatedAt = now
	return created, nil
}

// UpdateAppointment merges the patch over the seed record with the id, or
// over a bare record when the id is unknown to the dataset.
func (p *Provider) UpdateAppointment(ctx context.Context, id string, patch *entity.AppointmentPatch) (*entity.Appointment, error) {
	log.Info("mock data: appointment update simulated")
	updated, _ := p.GetAppointment(ctx, id)
	if updated == nil {
		updated = &entity.Appointment{ID: id}
	}
	patch.Apply(updated)
	updated.UpdatedAt = p.now()
	return updated, nil
}

func (p *Provider) DeleteAppointment(_ context.Context, _ string) (bool, error) {
	log.Info("mock data: appointment deletion simulated")
	return true, nil
}

func (p *Provider) ListPatients(_ context.Context) ([]*entity.Patient, error) {
	out := make([]*entity.Patient, len(p.data.Patients))
	for i, patient := range p.data.Patients {
		c := *patient
		out[i] = &c
	}
	return out, nil
}

func (p *Provider) ListRelatives(_ context.Context, patientID string) ([]*entity.Relative, error) {
	out := []*entity.Relative{}
	for _, rel := range p.data.Relatives {
		if rel.PatientID == patientID {
			c := *rel
			out = append(out, &c)
		}
	}
	return out, nil
}

func (p *Provider) ListCategories(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, len(p.data.Categories))
	for i, category := range p.data.Categories {
		c := *category
		out[i] = &c
	}
	return out, nil
}

func (p *Provider) ListUsers(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, len(p.data.Users))
	for i, user := range p.data.Users {
		c := *user
		out[i] = &c
	}
	return out, nil
}

func (p *Provider) ListActivities(_ context.Context, appointmentID string) ([]*entity.Activity, error) {
	out := []*entity.Activity{}
	for _, act := range p.data.Activities {
		if act.AppointmentID == appointmentID {
			c := *act
			out = append(out, &c)
		}
	}
	return out, nil
}

func (p *Provider) CreateActivity(_ context.Context, activity *entity.Activity) (*entity.Activity, error) {
	log.Info("mock data: activity creation simulated")
	c := *activity
	c.ID = p.syntheticID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = p.now()
	}
	return &c, nil
}

func (p *Provider) ListAssignments(_ context.Context, appointmentID string) ([]*entity.Assignment, error) {
	out := []*entity.Assignment{}
	for _, as := range p.data.Assignments {
		if as.AppointmentID == appointmentID {
			c := *as
			out = append(out, &c)
		}
	}
	return out, nil
}

func (p *Provider) CreateAssignment(_ context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	log.Info("mock data: appointment assignee creation simulated")
	c := *assignment
	c.ID = p.syntheticID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = p.now()
	}
	return &c, nil
}

func copyAppointment(appt *entity.Appointment) *entity.Appointment {
	c := *appt
	if appt.Attachments != nil {
		c.Attachments = append(c.Attachments[:0:0], appt.Attachments...)
	}
	return &c
}
