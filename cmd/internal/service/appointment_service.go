package service

import (
	"context"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
)

func (s *DefaultCalendarService) GetAppointments(ctx context.Context, mock *bool, req *CriteriaRequest) ([]calendar.Appointment, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	criteria, err := toCriteria(req, s.opts.Location)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	appts, err := s.GetFilteredCalendarAppointments(ctx, s.Selector(mock), criteria)
	if err != nil {
		return nil, toAPIError(err)
	}
	return appts, nil
}

func (s *DefaultCalendarService) GetAppointment(ctx context.Context, mock *bool, id string) (*entity.Appointment, apierror.ErrorResponse) {
	appt, err := s.Selector(mock).Current().GetAppointment(ctx, id)
	if err != nil {
		return nil, toAPIError(err)
	}
	if appt == nil {
		return nil, apierror.NotFoundError
	}
	return appt, nil
}

func (s *DefaultCalendarService) DeleteAppointment(ctx context.Context, mock *bool, id string) apierror.ErrorResponse {
	deleted, err := s.Selector(mock).Current().DeleteAppointment(ctx, id)
	if err != nil {
		return toAPIError(err)
	}
	if !deleted {
		log.Errorf("appointment %s was not deleted", id)
		return apierror.InternalServerError
	}
	return nil
}

func (s *DefaultCalendarService) GetActivities(ctx context.Context, mock *bool, appointmentID string) ([]*entity.Activity, apierror.ErrorResponse) {
	activities, err := s.Selector(mock).Current().ListActivities(ctx, appointmentID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return activities, nil
}

func (s *DefaultCalendarService) CreateActivity(ctx context.Context, mock *bool, req *ActivityRequest) (*entity.Activity, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	activity, err := s.Selector(mock).Current().CreateActivity(ctx, &entity.Activity{
		CreatedBy:     req.CreatedBy,
		AppointmentID: req.AppointmentID,
		Type:          req.Type,
		Content:       req.Content,
	})
	if err != nil {
		return nil, toAPIError(err)
	}
	return activity, nil
}

func (s *DefaultCalendarService) GetAssignments(ctx context.Context, mock *bool, appointmentID string) ([]*entity.Assignment, apierror.ErrorResponse) {
	assignments, err := s.Selector(mock).Current().ListAssignments(ctx, appointmentID)
	if err != nil {
		return nil, toAPIError(err)
	}
	return assignments, nil
}

func (s *DefaultCalendarService) CreateAssignment(ctx context.Context, mock *bool, req *AssignmentRequest) (*entity.Assignment, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	assignment, err := s.Selector(mock).Current().CreateAssignment(ctx, &entity.Assignment{
		AppointmentID: req.AppointmentID,
		UserID:        req.UserID,
		UserType:      req.UserType,
	})
	if err != nil {
		return nil, toAPIError(err)
	}
	return assignment, nil
}
