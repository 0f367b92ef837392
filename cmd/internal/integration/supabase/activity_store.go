package supabase

import (
	"context"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/google/uuid"
	supa "github.com/supabase-community/supabase-go"
)

type ActivityStore struct {
	client *supa.Client
}

func (s *ActivityStore) FindByAppointment(_ context.Context, appointmentID string) ([]*entity.Activity, error) {
	data, count, err := s.client.From(tableActivities).
		Select("*", "", false).
		Eq("appointment", appointmentID).
		Order("created_at", ascending).
		Execute()
	return decode[entity.Activity](data, count, err)
}

func (s *ActivityStore) Create(_ context.Context, activity *entity.Activity) (*entity.Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	data, count, err := s.client.From(tableActivities).
		Insert(activity, false, "", returnRepresentation, "").
		Execute()
	return first[entity.Activity](decode[entity.Activity](data, count, err))
}

type AssignmentStore struct {
	client *supa.Client
}

func (s *AssignmentStore) FindByAppointment(_ context.Context, appointmentID string) ([]*entity.Assignment, error) {
	data, count, err := s.client.From(tableAssignees).
		Select("*", "", false).
		Eq("appointment", appointmentID).
		Order("created_at", ascending).
		Execute()
	return decode[entity.Assignment](data, count, err)
}

func (s *AssignmentStore) Create(_ context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	data, count, err := s.client.From(tableAssignees).
		Insert(assignment, false, "", returnRepresentation, "").
		Execute()
	return first[entity.Assignment](decode[entity.Assignment](data, count, err))
}
