package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/labstack/gommon/log"
)

type AppointmentStore interface {
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	FindFiltered(ctx context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error)
	FindByID(ctx context.Context, id string) ([]*entity.Appointment, error)
	Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error)
	Update(ctx context.Context, id string, cols map[string]any) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type PatientStore interface {
	FindAll(ctx context.Context) ([]*entity.Patient, error)
	FindRelatives(ctx context.Context, patientID string) ([]*entity.Relative, error)
}

type CategoryStore interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type UserStore interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
}

type ActivityStore interface {
	FindByAppointment(ctx context.Context, appointmentID string) ([]*entity.Activity, error)
	Create(ctx context.Context, activity *entity.Activity) (*entity.Activity, error)
}

type AssignmentStore interface {
	FindByAppointment(ctx context.Context, appointmentID string) ([]*entity.Assignment, error)
	Create(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error)
}

// Stores bundles one store per remote resource.
type Stores struct {
	Appointments AppointmentStore
	Patients     PatientStore
	Categories   CategoryStore
	Users        UserStore
	Activities   ActivityStore
	Assignments  AssignmentStore
}

// Gateway is the uniform query interface over the remote store. No store
// error crosses it: every failure is logged and returned as a *Failure next
// to the operation's sentinel value.
type Gateway struct {
	stores Stores
	now    func() time.Time
}

func New(stores Stores) *Gateway {
	return &Gateway{stores: stores, now: time.Now}
}

// WithClock replaces the time source used for created-at and updated-at.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	return g
}

func (g *Gateway) ListAppointments(ctx context.Context) ([]*entity.Appointment, error) {
	appts, err := g.stores.Appointments.FindAll(ctx)
	if err != nil {
		return []*entity.Appointment{}, storeFailure("appointments.getAll", err)
	}
	return nonNil(appts), nil
}

// FilterAppointments lists the appointments matching q. An empty query lists
// all of them.
func (g *Gateway) FilterAppointments(ctx context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error) {
	if q.IsEmpty() {
		return g.ListAppointments(ctx)
	}
	appts, err := g.stores.Appointments.FindFiltered(ctx, q)
	if err != nil {
		return []*entity.Appointment{}, storeFailure("appointments.getFiltered", err)
	}
	return nonNil(appts), nil
}

func (g *Gateway) GetAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	const op = "appointments.getById"

	rows, err := g.stores.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure(op, err)
	}
	switch len(rows) {
	case 0:
		return nil, notFound(op, id)
	case 1:
		return rows[0], nil
	default:
		log.Warnf("%s: %d rows share id %q", op, len(rows), id)
		return nil, &Failure{Op: op, Reason: ReasonAmbiguous, Err: fmt.Errorf("%d rows with id %q", len(rows), id)}
	}
}

// CreateAppointment stores appt. The store assigns the id when appt has
// none; timestamps default to now.
func (g *Gateway) CreateAppointment(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	now := g.now()
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = now
	}
	if appt.UpdatedAt.IsZero() {
		appt.UpdatedAt = now
	}

	created, err := g.stores.Appointments.Create(ctx, appt)
	if err == nil && created == nil {
		err = errNoRecord
	}
	if err != nil {
		return nil, storeFailure("appointments.create", err)
	}
	return created, nil
}

// UpdateAppointment merges patch onto the stored record. updated_at is
// always overwritten, even by an empty patch.
func (g *Gateway) UpdateAppointment(ctx context.Context, id string, patch *entity.AppointmentPatch) (*entity.Appointment, error) {
	const op = "appointments.update"

	cols := patch.Columns()
	cols["updated_at"] = g.now()

	updated, err := g.stores.Appointments.Update(ctx, id, cols)
	if err != nil {
		return nil, storeFailure(op, err)
	}
	if updated == nil {
		return nil, notFound(op, id)
	}
	return updated, nil
}

func (g *Gateway) DeleteAppointment(ctx context.Context, id string) (bool, error) {
	if err := g.stores.Appointments.Delete(ctx, id); err != nil {
		return false, storeFailure("appointments.delete", err)
	}
	return true, nil
}

func (g *Gateway) ListPatients(ctx context.Context) ([]*entity.Patient, error) {
	patients, err := g.stores.Patients.FindAll(ctx)
	if err != nil {
		return []*entity.Patient{}, storeFailure("patients.getAll", err)
	}
	return nonNil(patients), nil
}

func (g *Gateway) ListRelatives(ctx context.Context, patientID string) ([]*entity.Relative, error) {
	relatives, err := g.stores.Patients.FindRelatives(ctx, patientID)
	if err != nil {
		return []*entity.Relative{}, storeFailure("relatives.getFiltered", err)
	}
	return nonNil(relatives), nil
}

func (g *Gateway) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := g.stores.Categories.FindAll(ctx)
	if err != nil {
		return []*entity.Category{}, storeFailure("categories.getAll", err)
	}
	return nonNil(categories), nil
}

func (g *Gateway) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := g.stores.Users.FindAll(ctx)
	if err != nil {
		return []*entity.User{}, storeFailure("users.getAll", err)
	}
	return nonNil(users), nil
}

func (g *Gateway) ListActivities(ctx context.Context, appointmentID string) ([]*entity.Activity, error) {
	activities, err := g.stores.Activities.FindByAppointment(ctx, appointmentID)
	if err != nil {
		return []*entity.Activity{}, storeFailure("activities.getFiltered", err)
	}
	return nonNil(activities), nil
}

func (g *Gateway) CreateActivity(ctx context.Context, activity *entity.Activity) (*entity.Activity, error) {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = g.now()
	}
	created, err := g.stores.Activities.Create(ctx, activity)
	if err == nil && created == nil {
		err = errNoRecord
	}
	if err != nil {
		return nil, storeFailure("activities.create", err)
	}
	return created, nil
}

func (g *Gateway) ListAssignments(ctx context.Context, appointmentID string) ([]*entity.Assignment, error) {
	assignments, err := g.stores.Assignments.FindByAppointment(ctx, appointmentID)
	if err != nil {
		return []*entity.Assignment{}, storeFailure("appointment_assignee.getFiltered", err)
	}
	return nonNil(assignments), nil
}

func (g *Gateway) CreateAssignment(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = g.now()
	}
	created, err := g.stores.Assignments.Create(ctx, assignment)
	if err == nil && created == nil {
		err = errNoRecord
	}
	if err != nil {
		return nil, storeFailure("appointment_assignee.create", err)
	}
	return created, nil
}

func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
