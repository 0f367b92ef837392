package service

import (
	"context"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
)

// Patients, relatives, categories and users are read-only here.

func (s *DefaultCalendarService) GetPatients(ctx context.Context, mock *bool) ([]*entity.Patient, apierror.ErrorResponse) {
	patients, err := s.Selector(mock).Current().ListPatients(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return patients, nil
}

func (s *DefaultCalendarService) GetRelatives(ctx context.Context, mock *bool, patientID string) ([]*entity.Relative, apierror.ErrorResponse) {
	relatives, err := s.Selector(mock).Current().ListRelatives(ctx, patientID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return relatives, nil
}

func (s *DefaultCalendarService) GetCategories(ctx context.Context, mock *bool) ([]*entity.Category, apierror.ErrorResponse) {
	categories, err := s.Selector(mock).Current().ListCategories(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return categories, nil
}

func (s *DefaultCalendarService) GetUsers(ctx context.Context, mock *bool) ([]*entity.User, apierror.ErrorResponse) {
	users, err := s.Selector(mock).Current().ListUsers(ctx)
	if err != nil {
		return nil, toAPIError(err)
	}
	return users, nil
}
