package repository

import (
	"context"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *DefaultActivityRepository {
	return &DefaultActivityRepository{db: db}
}

func (a *DefaultActivityRepository) FindByAppointment(ctx context.Context, appointmentID string) ([]*entity.Activity, error) {
	var activities []*entity.Activity
	err := a.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "appointment"}, Value: appointmentID}).
		Order("created_at asc").
		Find(&activities).Error
	return activities, err
}

func (a *DefaultActivityRepository) Create(ctx context.Context, activity *entity.Activity) (*entity.Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if err := a.db.WithContext(ctx).Create(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

type DefaultAssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *DefaultAssignmentRepository {
	return &DefaultAssignmentRepository{db: db}
}

func (a *DefaultAssignmentRepository) FindByAppointment(ctx context.Context, appointmentID string) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	err := a.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "appointment"}, Value: appointmentID}).
		Order("created_at asc").
		Find(&assignments).Error
	return assignments, err
}

func (a *DefaultAssignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) (*entity.Assignment, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	if err := a.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return nil, err
	}
	return assignment, nil
}
