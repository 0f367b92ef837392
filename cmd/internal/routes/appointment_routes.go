package routes

import (
	"context"
	"net/http"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/service"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	GetAppointments(ctx context.Context, mock *bool, req *service.CriteriaRequest) ([]calendar.Appointment, apierror.ErrorResponse)
	GetAppointment(ctx context.Context, mock *bool, id string) (*entity.Appointment, apierror.ErrorResponse)
	DeleteAppointment(ctx context.Context, mock *bool, id string) apierror.ErrorResponse
	GetActivities(ctx context.Context, mock *bool, appointmentID string) ([]*entity.Activity, apierror.ErrorResponse)
	CreateActivity(ctx context.Context, mock *bool, req *service.ActivityRequest) (*entity.Activity, apierror.ErrorResponse)
	GetAssignments(ctx context.Context, mock *bool, appointmentID string) ([]*entity.Assignment, apierror.ErrorResponse)
	CreateAssignment(ctx context.Context, mock *bool, req *service.AssignmentRequest) (*entity.Assignment, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.CriteriaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	appts, apierr := a.AppointmentService.GetAppointments(c.Request().Context(), mock, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetAppointment(c echo.Context) error {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	appt, apierr := a.AppointmentService.GetAppointment(c.Request().Context(), mock, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, appt)
}

func (a *DefaultAppointmentRoute) DeleteAppointment(c echo.Context) error {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if serr := a.AppointmentService.DeleteAppointment(c.Request().Context(), mock, id); serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.NoContent(http.StatusOK)
}

func (a *DefaultAppointmentRoute) GetActivities(c echo.Context) error {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	activities, apierr := a.AppointmentService.GetActivities(c.Request().Context(), mock, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"activities": activities}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CreateActivity(c echo.Context) error {
	var req service.ActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	activity, apierr := a.AppointmentService.CreateActivity(c.Request().Context(), mock, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, activity)
}

func (a *DefaultAppointmentRoute) GetAssignments(c echo.Context) error {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	assignments, apierr := a.AppointmentService.GetAssignments(c.Request().Context(), mock, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"assignments": assignments}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CreateAssignment(c echo.Context) error {
	var req service.AssignmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	assignment, apierr := a.AppointmentService.CreateAssignment(c.Request().Context(), mock, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, assignment)
}
