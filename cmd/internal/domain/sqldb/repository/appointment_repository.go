package repository

import (
	"context"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.WithContext(ctx).Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) FindFiltered(ctx context.Context, q entity.AppointmentQuery) ([]*entity.Appointment, error) {
	tx := a.db.WithContext(ctx).Model(&entity.Appointment{})
	if q.PatientID != "" {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: "patient"}, Value: q.PatientID})
	}
	if q.CategoryID != "" {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: "category"}, Value: q.CategoryID})
	}
	if q.From != nil {
		tx = tx.Where(clause.Gte{Column: clause.Column{Name: "start"}, Value: q.From.UTC()})
	}
	if q.To != nil {
		tx = tx.Where(clause.Lte{Column: clause.Column{Name: "start"}, Value: q.To.UTC()})
	}

	var appts []*entity.Appointment
	err := tx.Find(&appts).Error
	return appts, err
}

// FindByID returns every row carrying the id, so callers can tell a missing
// record from an ambiguous one.
func (a *DefaultAppointmentRepository) FindByID(ctx context.Context, id string) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.WithContext(ctx).Where("id = ?", id).Limit(2).Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) Create(ctx context.Context, appt *entity.Appointment) (*entity.Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	appt.Start, appt.End = appt.Start.UTC(), appt.End.UTC()
	if err := a.db.WithContext(ctx).Create(appt).Error; err != nil {
		return nil, err
	}
	return appt, nil
}

// Update applies the given columns and returns the stored row, or nil when
// no row has the id. Timestamps are stored in UTC so range filters compare
// consistently on every driver.
func (a *DefaultAppointmentRepository) Update(ctx context.Context, id string, cols map[string]any) (*entity.Appointment, error) {
	for col, v := range cols {
		if t, ok := v.(time.Time); ok {
			cols[col] = t.UTC()
		}
	}

	res := a.db.WithContext(ctx).Model(&entity.Appointment{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var appt entity.Appointment
	if err := a.db.WithContext(ctx).Where("id = ?", id).First(&appt).Error; err != nil {
		return nil, err
	}
	return &appt, nil
}

func (a *DefaultAppointmentRepository) Delete(ctx context.Context, id string) error {
	return a.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{}).Error
}
