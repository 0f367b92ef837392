package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/service"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type SessionRegistry interface {
	Open(ctx context.Context, mock *bool) (*service.Session, *service.SessionState)
	Get(id string) (*service.Session, apierror.ErrorResponse)
	Close(id string) apierror.ErrorResponse
}

type OpenSessionRequest struct {
	Mock *bool `json:"mock"`
}

type DataSourceRequest struct {
	Mock *bool `json:"mock"`
}

type DefaultSessionRoute struct {
	Sessions SessionRegistry
	Location *time.Location
}

func NewSessionDefault(sessions SessionRegistry, loc *time.Location) *DefaultSessionRoute {
	if loc == nil {
		loc = time.Local
	}
	return &DefaultSessionRoute{Sessions: sessions, Location: loc}
}

func (r *DefaultSessionRoute) session(c echo.Context) (*service.Session, apierror.ErrorResponse) {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return nil, apierr
	}
	return r.Sessions.Get(id)
}

func (r *DefaultSessionRoute) OpenSession(c echo.Context) error {
	var req OpenSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	_, state := r.Sessions.Open(c.Request().Context(), req.Mock)
	return c.JSON(http.StatusCreated, state)
}

func (r *DefaultSessionRoute) GetSession(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session.State())
}

func (r *DefaultSessionRoute) CloseSession(c echo.Context) error {
	id, apierr := requiredParam(c, "id")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	if apierr := r.Sessions.Close(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (r *DefaultSessionRoute) Reload(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session.Reload(c.Request().Context()))
}

func (r *DefaultSessionRoute) SetDataSource(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req DataSourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}
	if req.Mock == nil {
		apierr := apierror.NewMissingParamError("mock")
		return c.JSON(apierr.Code(), apierr)
	}

	return c.JSON(http.StatusOK, session.SetDataSource(c.Request().Context(), *req.Mock))
}

func (r *DefaultSessionRoute) ApplyFilter(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.CriteriaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	state, apierr := session.ApplyFilter(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, state)
}

func (r *DefaultSessionRoute) ResetFilter(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session.ResetFilter(c.Request().Context()))
}

func (r *DefaultSessionRoute) List(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"days": session.List()}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultSessionRoute) Week(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	date, apierr := dayParam(c, "date", r.Location)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session.Week(date))
}

func (r *DefaultSessionRoute) Month(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	month, apierr := monthParam(c, "month", r.Location)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	selected, apierr := dayParam(c, "selected", r.Location)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, session.Month(month, selected))
}

// StreamMarker pushes the current-time marker of a week as server-sent
// events until the client goes away.
func (r *DefaultSessionRoute) StreamMarker(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	date, apierr := dayParam(c, "date", r.Location)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ticker := session.MarkerTicker(date)
	err := ticker.Run(c.Request().Context(), func(m *calendar.TimeMarker) error {
		data, err := json.Marshal(echo.Map{"marker": m})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: marker\ndata: %s\n\n", data); err != nil {
			return err
		}
		w.Flush()
		return nil
	})
	if err != nil {
		log.Warnf("session %s: marker stream stopped: %v", session.ID, err)
	}
	return nil
}

func (r *DefaultSessionRoute) ViewAppointment(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	apptID, apierr := requiredParam(c, "appointmentId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	form, apierr := session.ViewAppointment(apptID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"form": form, "dialog": session.State().Dialog}
	return c.JSON(http.StatusOK, &resp)
}

func (r *DefaultSessionRoute) CreateAppointment(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var form service.AppointmentForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	result, apierr := session.CreateAppointment(c.Request().Context(), &form)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, result)
}

func (r *DefaultSessionRoute) UpdateAppointment(c echo.Context) error {
	session, apierr := r.session(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	apptID, apierr := requiredParam(c, "appointmentId")
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var upd service.AppointmentUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	result, apierr := session.UpdateAppointment(c.Request().Context(), apptID, &upd)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, result)
}
