package service

import (
	"context"
	"errors"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/gateway"
	"github.com/amritkc/vocareapp/cmd/internal/mockdata"
	"github.com/amritkc/vocareapp/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
)

var fixedNow = time.Date(2025, 6, 23, 9, 7, 48, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

var errStore = &gateway.Failure{Op: "test", Reason: gateway.ReasonStore, Err: errors.New("connection refused")}

// stubRemote serves the seed data like a healthy remote store and fails the
// operations that are switched on.
type stubRemote struct {
	*mockdata.Provider
	failList       bool
	failFilter     bool
	failPatients   bool
	failCategories bool
	failCreate     bool
	failUpdate     bool
	nilCreate      bool
	getErr         error
}

func newStubRemote() *stubRemote {
	return &stubRemote{Provider: mockdata.NewProviderWithClock(clock)}
}

func (s *stubRemote) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	if s.failList {
		return []*entity.Appointment{}, errStore
	}
	return s.Provider.ListAppointments(ctx)
}

func (s *stubRemote) FilterAppointments(ctx context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error) {
	if s.failFilter {
		return []*entity.Appointment{}, errStore
	}
	return s.Provider.FilterAppointments(ctx, q)
}

func (s *stubRemote) GetAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.Provider.GetAppointment(ctx, id)
}

func (s *stubRemote) ListPatients(ctx context.Context) ([]*entity.Patient, error) {
	if s.failPatients {
		return []*entity.Patient{}, errStore
	}
	return s.Provider.ListPatients(ctx)
}

func (s *stubRemote) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	if s.failCategories {
		return []*entity.Category{}, errStore
	}
	return s.Provider.ListCategories(ctx)
}

func (s *stubRemote) CreateAppointment(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	if s.failCreate {
		return nil, errStore
	}
	if s.nilCreate {
		return nil, nil
	}
	return s.Provider.CreateAppointment(ctx, appt)
}

func (s *stubRemote) UpdateAppointment(ctx context.Context, id string, patch *entity.AppointmentPatch) (*entity.Appointment, error) {
	if s.failUpdate {
		return nil, errStore
	}
	return s.Provider.UpdateAppointment(ctx, id, patch)
}

func newTestService(remote *stubRemote, rollback bool) *DefaultCalendarService {
	validate := validator.New()
	validators.Register(validate)
	return NewCalendarService(mockdata.NewProviderWithClock(clock), remote, validate, Options{
		Location:             time.UTC,
		Scale:                calendar.DefaultScale,
		RollbackFailedWrites: rollback,
		Now:                  clock,
	})
}

func ptr[T any](v T) *T {
	return &v
}
