package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/mockdata"
	"github.com/amritkc/vocareapp/cmd/internal/service"
	"github.com/amritkc/vocareapp/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 23, 9, 7, 48, 0, time.UTC)

type stateBody struct {
	ID           string                `json:"id"`
	DataSource   string                `json:"dataSource"`
	Appointments int                   `json:"appointments"`
	Dialog       service.Dialog        `json:"dialog"`
	Notification *service.Notification `json:"notification"`
}

type errorBody struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

type testServer struct {
	e        *echo.Echo
	sessions *service.Sessions
	route    *DefaultSessionRoute
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	validate := validator.New()
	validators.Register(validate)
	svc := service.NewCalendarService(
		mockdata.NewProviderWithClock(clock),
		mockdata.NewProviderWithClock(clock),
		validate,
		service.Options{Location: time.UTC, Scale: calendar.DefaultScale, Now: clock},
	)
	sessions := service.NewSessions(svc)
	route := NewSessionDefault(sessions, time.UTC)

	e := echo.New()
	Register(e, NewAppointmentDefault(svc), NewDirectoryDefault(svc), route)
	return &testServer{e: e, sessions: sessions, route: route}
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type appointmentBody struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	TimeStart string `json:"timeStart"`
	Color     string `json:"color"`
}

type appointmentsBody struct {
	Appointments []appointmentBody `json:"appointments"`
}

type writeBody struct {
	Appointment  appointmentBody       `json:"appointment"`
	Persisted    bool                  `json:"persisted"`
	Dialog       service.Dialog        `json:"dialog"`
	Notification *service.Notification `json:"notification"`
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetAppointments(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		target string
		titles []string
	}{
		{"all", "/api/appointments", []string{
			"Arzt-Termin",
			"MDK Besuch - Mögliche Erhöhung des Pflegegrad",
			"Beratungsgespräch zur Pflegeversicherung",
		}},
		{"by category", "/api/appointments?category=" + mockdata.CategoryCareID, []string{
			"MDK Besuch - Mögliche Erhöhung des Pflegegrad",
		}},
		{"by patient from mock", "/api/appointments?mock=true&patient=" + mockdata.PatientKlausID, []string{
			"Beratungsgespräch zur Pflegeversicherung",
		}},
		{"by end date", "/api/appointments?end_date=2025-06-24", []string{
			"Arzt-Termin",
			"MDK Besuch - Mögliche Erhöhung des Pflegegrad",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			body := decodeBody[appointmentsBody](t, rec)
			var titles []string
			for _, appt := range body.Appointments {
				titles = append(titles, appt.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestGetAppointmentsRejectsBadParams(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/appointments?mock=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorBody](t, rec).Message, `"mock"`)

	rec = s.do(t, http.MethodGet, "/api/appointments?start_date=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeBody[errorBody](t, rec).Fields)
}

func TestGetAppointment(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/appointments/"+mockdata.AppointmentDoctorID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Arzt-Termin", body["title"])

	rec = s.do(t, http.MethodGet, "/api/appointments/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivitiesAndAssignments(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/appointments/"+mockdata.AppointmentDoctorID+"/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	activities := decodeBody[map[string][]map[string]any](t, rec)["activities"]
	assert.Len(t, activities, 1)

	rec = s.do(t, http.MethodGet, "/api/appointments/"+mockdata.AppointmentMDKID+"/assignments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assignments := decodeBody[map[string][]map[string]any](t, rec)["assignments"]
	require.Len(t, assignments, 1)
	assert.Equal(t, mockdata.UserMichaelID, assignments[0]["user"])

	rec = s.do(t, http.MethodPost, "/api/activities", `{"appointment":"`+mockdata.AppointmentDoctorID+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/activities", `{"appointment":"`+mockdata.AppointmentDoctorID+`","created_by":"`+mockdata.UserSarahID+`","type":"note","content":"Rezept abgeholt"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/assignments", `{"appointment":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDirectory(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{"/api/patients", "/api/categories", "/api/users"} {
		rec := s.do(t, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)
		body := decodeBody[map[string][]map[string]any](t, rec)
		key := strings.TrimPrefix(target, "/api/")
		assert.Len(t, body[key], 3, target)
	}

	rec := s.do(t, http.MethodGet, "/api/patients/"+mockdata.PatientHansID+"/relatives", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[map[string][]map[string]any](t, rec)["relatives"], 1)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/sessions", `{"mock":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decodeBody[stateBody](t, rec)
	assert.Equal(t, "mock", state.DataSource)
	assert.Equal(t, 3, state.Appointments)
	require.NotNil(t, state.Notification)
	assert.Equal(t, "Mock-Daten geladen", state.Notification.Title)

	base := "/api/sessions/" + state.ID

	rec = s.do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[stateBody](t, rec).Notification)

	rec = s.do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, s.sessions.Len())

	rec = s.do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionOpenWithoutBody(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decodeBody[stateBody](t, rec)
	assert.Equal(t, "api", state.DataSource)
	assert.Equal(t, "API-Daten geladen", state.Notification.Title)
}

func TestSessionDataSourceAndFilter(t *testing.T) {
	s := newTestServer(t)
	state := decodeBody[stateBody](t, s.do(t, http.MethodPost, "/api/sessions", `{"mock":true}`))
	base := "/api/sessions/" + state.ID

	rec := s.do(t, http.MethodPut, base+"/filter", `{"category":"`+mockdata.CategoryCareID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeBody[stateBody](t, rec)
	assert.Equal(t, 1, state.Appointments)
	assert.Equal(t, "Filter angewendet", state.Notification.Title)

	rec = s.do(t, http.MethodPut, base+"/filter", `{"startDate":"23.06.2025"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodDelete, base+"/filter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decodeBody[stateBody](t, rec).Appointments)

	rec = s.do(t, http.MethodPut, base+"/datasource", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, base+"/datasource", `{"mock":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[stateBody](t, rec).Notification)

	rec = s.do(t, http.MethodPut, base+"/datasource", `{"mock":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	state = decodeBody[stateBody](t, rec)
	assert.Equal(t, "api", state.DataSource)
	assert.Equal(t, "API-Daten geladen", state.Notification.Title)

	rec = s.do(t, http.MethodPost, base+"/reload", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decodeBody[stateBody](t, rec).Appointments)
}

func TestSessionViews(t *testing.T) {
	s := newTestServer(t)
	state := decodeBody[stateBody](t, s.do(t, http.MethodPost, "/api/sessions", `{"mock":true}`))
	base := "/api/sessions/" + state.ID

	rec := s.do(t, http.MethodGet, base+"/list", "")
	require.Equal(t, http.StatusOK, rec.Code)
	days := decodeBody[map[string][]map[string]any](t, rec)["days"]
	require.Len(t, days, 3)
	assert.Equal(t, "2025-06-23", days[0]["date"])
	assert.Equal(t, true, days[0]["isToday"])

	rec = s.do(t, http.MethodGet, base+"/week?date=2025-06-25", "")
	require.Equal(t, http.StatusOK, rec.Code)
	week := decodeBody[struct {
		Start  string               `json:"start"`
		Days   []map[string]any     `json:"days"`
		Marker *calendar.TimeMarker `json:"marker"`
	}](t, rec)
	assert.Equal(t, "2025-06-23", week.Start)
	assert.Len(t, week.Days, 7)
	require.NotNil(t, week.Marker)
	assert.Equal(t, "09:07", week.Marker.Label)

	rec = s.do(t, http.MethodGet, base+"/week?date=next-week", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, base+"/month?month=2025-06&selected=2025-06-30", "")
	require.Equal(t, http.StatusOK, rec.Code)
	month := decodeBody[struct {
		Title                string           `json:"title"`
		Cells                []map[string]any `json:"cells"`
		SelectedAppointments []map[string]any `json:"selectedAppointments"`
	}](t, rec)
	assert.Equal(t, "Juni 2025", month.Title)
	assert.Len(t, month.Cells, 42)
	require.Len(t, month.SelectedAppointments, 1)
	assert.Equal(t, "Beratungsgespräch zur Pflegeversicherung", month.SelectedAppointments[0]["title"])

	rec = s.do(t, http.MethodGet, base+"/month?month=June", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionAppointmentDialog(t *testing.T) {
	s := newTestServer(t)
	state := decodeBody[stateBody](t, s.do(t, http.MethodPost, "/api/sessions", `{"mock":true}`))
	base := "/api/sessions/" + state.ID

	rec := s.do(t, http.MethodGet, base+"/appointments/"+mockdata.AppointmentDoctorID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeBody[struct {
		Form   service.FormData `json:"form"`
		Dialog service.Dialog   `json:"dialog"`
	}](t, rec)
	assert.Equal(t, "Arzt-Termin", view.Form.Title)
	assert.Equal(t, "2025-06-23", view.Form.Date)
	assert.Equal(t, "08:45", view.Form.StartTime)
	assert.True(t, view.Dialog.Open)
	assert.Equal(t, service.DialogView, view.Dialog.Mode)

	rec = s.do(t, http.MethodGet, base+"/appointments/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPut, base+"/appointments/"+mockdata.AppointmentDoctorID, `{"title":"Zahnarzt"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[writeBody](t, rec)
	assert.True(t, updated.Persisted)
	assert.False(t, updated.Dialog.Open)
	assert.Equal(t, "Zahnarzt", updated.Appointment.Title)
	assert.Equal(t, `Termin "Zahnarzt" wurde erfolgreich aktualisiert.`, updated.Notification.Description)

	form := `{"title":"Hausbesuch","date":"2025-06-26","startTime":"14:00","endTime":"15:00","category":"` + mockdata.CategoryCareID + `"}`
	rec = s.do(t, http.MethodPost, base+"/appointments", form)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[writeBody](t, rec)
	assert.True(t, created.Persisted)
	assert.Equal(t, "Hausbesuch", created.Appointment.Title)
	assert.Equal(t, "14:00", created.Appointment.TimeStart)
	assert.Equal(t, "purple", created.Appointment.Color)

	rec = s.do(t, http.MethodGet, base, "")
	assert.Equal(t, 4, decodeBody[stateBody](t, rec).Appointments)

	rec = s.do(t, http.MethodPost, base+"/appointments", `{"title":"Ohne Zeit","date":"2025-06-26"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decodeBody[errorBody](t, rec).Fields
	assert.Contains(t, fields, "StartTime")
}

func TestStreamMarker(t *testing.T) {
	s := newTestServer(t)
	session, _ := s.sessions.Open(context.Background(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+session.ID+"/week/now?date=2025-06-23", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(session.ID)

	require.NoError(t, s.route.StreamMarker(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "event: marker\ndata: {\"marker\":{\"top\":547,\"label\":\"09:07\"}}\n\n", rec.Body.String())
}

func TestStreamMarkerOutsideCurrentWeek(t *testing.T) {
	s := newTestServer(t)
	session, _ := s.sessions.Open(context.Background(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/?date=2025-07-01", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(session.ID)

	require.NoError(t, s.route.StreamMarker(c))
	assert.Equal(t, "event: marker\ndata: {\"marker\":null}\n\n", rec.Body.String())
}

func TestStreamMarkerUnknownSession(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/api/sessions/nope/week/now", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
