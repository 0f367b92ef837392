package datasource

import (
	"context"
	"sync/atomic"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
)

// Source is implemented by both the mock provider and the remote gateway.
type Source interface {
	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)
	FilterAppointments(ctx context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*entity.Appointment, error)
	CreateAppointment(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, patch *entity.AppointmentPatch) (*entity.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) (bool, error)

	ListPatients(ctx context.Context) ([]*entity.Patient, error)
	ListRelatives(ctx context.Context, patientID string) ([]*entity.Relative, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)

	ListActivities(ctx context.Context, appointmentID string) ([]*entity.Activity, error)
	CreateActivity(ctx context.Context, activity *entity.Activity) (*entity.Activity, error)
	ListAssignments(ctx context.Context, appointmentID string) ([]*entity.Assignment, error)
	CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error)
}

// Selector chooses between mock and remote data. It is owned by the view
// that consumes it; the flag is read on every call to Current, so a switch
// redirects the very next operation.
type Selector struct {
	mock    Source
	remote  Source
	useMock atomic.Bool
}

func NewSelector(mock, remote Source, useMock bool) *Selector {
	s := &Selector{mock: mock, remote: remote}
	s.useMock.Store(useMock)
	return s
}

func (s *Selector) UseMock() bool {
	return s.useMock.Load()
}

// SetUseMock changes the flag and reports whether it actually changed.
func (s *Selector) SetUseMock(useMock bool) bool {
	return s.useMock.Swap(useMock) != useMock
}

func (s *Selector) Current() Source {
	if s.useMock.Load() {
		return s.mock
	}
	return s.remote
}

// Name labels the current source for logs and responses.
func (s *Selector) Name() string {
	if s.useMock.Load() {
		return "mock"
	}
	return "api"
}
