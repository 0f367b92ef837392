package routes

import (
	"context"
	"net/http"

	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
)

type DirectoryService interface {
	GetPatients(ctx context.Context, mock *bool) ([]*entity.Patient, apierror.ErrorResponse)
	GetRelatives(ctx context.Context, mock *bool, patientID string) ([]*entity.Relative, apierror.ErrorResponse)
	GetCategories(ctx context.Context, mock *bool) ([]*entity.Category, apierror.ErrorResponse)
	GetUsers(ctx context.Context, mock *bool) ([]*entity.User, apierror.ErrorResponse)
}

type DefaultDirectoryRoute struct {
	DirectoryService DirectoryService
}

func NewDirectoryDefault(dirService DirectoryService) *DefaultDirectoryRoute {
	return &DefaultDirectoryRoute{DirectoryService: dirService}
}

func (d *DefaultDirectoryRoute) GetPatients(c echo.Context) error {
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	patients, apierr := d.DirectoryService.GetPatients(c.Request().Context(), mock)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"patients": patients}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDirectoryRoute) GetRelatives(c echo.Context) error {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	relatives, apierr := d.DirectoryService.GetRelatives(c.Request().Context(), mock, id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"relatives": relatives}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDirectoryRoute) GetCategories(c echo.Context) error {
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	categories, apierr := d.DirectoryService.GetCategories(c.Request().Context(), mock)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"categories": categories}
	return c.JSON(http.StatusOK, &resp)
}

func (d *DefaultDirectoryRoute) GetUsers(c echo.Context) error {
	mock, apierr := mockParam(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	users, apierr := d.DirectoryService.GetUsers(c.Request().Context(), mock)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"users": users}
	return c.JSON(http.StatusOK, &resp)
}
