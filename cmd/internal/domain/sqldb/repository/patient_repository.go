package repository

import (
	"context"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultPatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *DefaultPatientRepository {
	return &DefaultPatientRepository{db: db}
}

func (p *DefaultPatientRepository) FindAll(ctx context.Context) ([]*entity.Patient, error) {
	var patients []*entity.Patient
	err := p.db.WithContext(ctx).Find(&patients).Error
	return patients, err
}

func (p *DefaultPatientRepository) FindRelatives(ctx context.Context, patientID string) ([]*entity.Relative, error) {
	var relatives []*entity.Relative
	err := p.db.WithContext(ctx).Where("patient_id = ?", patientID).Find(&relatives).Error
	return relatives, err
}

type DefaultCategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *DefaultCategoryRepository {
	return &DefaultCategoryRepository{db: db}
}

func (c *DefaultCategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	err := c.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.WithContext(ctx).Find(&users).Error
	return users, err
}
