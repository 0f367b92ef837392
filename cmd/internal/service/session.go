package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/datasource"
	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils"
	"github.com/amritkc/vocareapp/cmd/internal/utils/apierror"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type DialogMode string

const (
	DialogView DialogMode = "view"
)

type Dialog struct {
	Open          bool       `json:"open"`
	Mode          DialogMode `json:"mode,omitempty"`
	AppointmentID string     `json:"appointmentId,omitempty"`
}

type SessionState struct {
	ID           string            `json:"id"`
	DataSource   string            `json:"dataSource"`
	Criteria     calendar.Criteria `json:"criteria"`
	Selected     calendar.Day      `json:"selected"`
	Dialog       Dialog            `json:"dialog"`
	Appointments int               `json:"appointments"`
	Notification *Notification     `json:"notification,omitempty"`
}

// WriteResult reports a create or update. Persisted is false when the data
// source rejected the write; the request itself still succeeds.
type WriteResult struct {
	Appointment  calendar.Appointment `json:"appointment"`
	Persisted    bool                 `json:"persisted"`
	Dialog       Dialog               `json:"dialog"`
	Notification *Notification        `json:"notification"`
}

// Session is the state of one calendar view: its own data source flag, the
// loaded collection, the active filter, the selected day and the dialog.
// Display appointments are derived from the raw records on every read.
type Session struct {
	ID string

	svc      *DefaultCalendarService
	selector *datasource.Selector

	mu       sync.Mutex
	snap     *snapshot
	criteria calendar.Criteria
	selected calendar.Day
	dialog   Dialog

	// lastSeen holds unix nanoseconds. Prune reads it without taking mu.
	lastSeen atomic.Int64
}

func newSession(svc *DefaultCalendarService, mock *bool) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		svc:      svc,
		selector: svc.Selector(mock),
		snap:     &snapshot{},
		selected: svc.today(),
	}
	s.touch()
	return s
}

func (s *Session) touch() {
	s.lastSeen.Store(s.svc.opts.Now().UnixNano())
}

func (s *Session) idleSince(cutoff time.Time) bool {
	return s.lastSeen.Load() < cutoff.UnixNano()
}

func (s *Session) stateLocked(n *Notification) *SessionState {
	return &SessionState{
		ID:           s.ID,
		DataSource:   s.selector.Name(),
		Criteria:     s.criteria,
		Selected:     s.selected,
		Dialog:       s.dialog,
		Appointments: len(s.snap.records),
		Notification: n,
	}
}

func (s *Session) State() *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.stateLocked(nil)
}

// Reload drops the filter and loads everything from the current source.
func (s *Session) Reload(ctx context.Context) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.criteria = calendar.Criteria{}
	return s.stateLocked(s.reloadLocked(ctx))
}

// reloadLocked leaves an empty collection behind when the load fails.
func (s *Session) reloadLocked(ctx context.Context) *Notification {
	snap, err := s.svc.load(ctx, s.selector.Current(), calendar.Criteria{})
	if err != nil {
		log.Errorf("session %s: loading %s data failed: %v", s.ID, s.selector.Name(), err)
		s.snap = &snapshot{}
		return loadFailed
	}
	s.snap = snap
	return loadedNotification(s.selector.Name())
}

// SetDataSource switches between mock and remote data. A change reloads the
// whole collection and clears the filter; setting the current value again
// does nothing.
func (s *Session) SetDataSource(ctx context.Context, mock bool) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if !s.selector.SetUseMock(mock) {
		return s.stateLocked(nil)
	}
	s.criteria = calendar.Criteria{}
	return s.stateLocked(s.reloadLocked(ctx))
}

// ApplyFilter loads the appointments matching req. Empty criteria take the
// full reload path. A failed filtered load keeps the previous collection.
func (s *Session) ApplyFilter(ctx context.Context, req *CriteriaRequest) (*SessionState, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.svc.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	criteria, err := toCriteria(req, s.svc.opts.Location)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.criteria = criteria
	if criteria.IsEmpty() {
		return s.stateLocked(s.reloadLocked(ctx)), nil
	}

	snap, err := s.svc.load(ctx, s.selector.Current(), criteria)
	if err != nil {
		log.Errorf("session %s: filtering %s data failed: %v", s.ID, s.selector.Name(), err)
		return s.stateLocked(filterFailed), nil
	}
	s.snap = snap
	return s.stateLocked(filtered), nil
}

func (s *Session) ResetFilter(ctx context.Context) *SessionState {
	return s.Reload(ctx)
}

func (s *Session) displayLocked() []calendar.Appointment {
	return s.snap.display(s.svc.mapper)
}

func (s *Session) List() []calendar.DayGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return calendar.GroupByDay(s.displayLocked(), s.svc.today())
}

// Week lays out the week containing date, which becomes the selected day.
// A nil date keeps the current selection.
func (s *Session) Week(date *calendar.Day) calendar.WeekGrid {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if date != nil {
		s.selected = *date
	}
	return calendar.BuildWeek(s.selected, s.svc.opts.Now(), s.displayLocked(), s.svc.opts.Scale)
}

// Month lays out month with the side panel for selected. Either may be nil:
// the selection is kept and the month defaults to the selected one.
func (s *Session) Month(month, selected *calendar.Day) calendar.MonthGrid {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	if selected != nil {
		s.selected = *selected
	}
	shown := s.selected
	if month != nil {
		shown = *month
	}
	return calendar.BuildMonth(shown, s.selected, s.svc.today(), s.displayLocked())
}

// MarkerTicker drives the current-time marker of the week containing week,
// or of the selected week when week is nil.
func (s *Session) MarkerTicker(week *calendar.Day) calendar.MarkerTicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	ref := s.selected
	if week != nil {
		ref = *week
	}
	return calendar.MarkerTicker{Week: ref, Scale: s.svc.opts.Scale, Now: s.svc.opts.Now}
}

// ViewAppointment opens the dialog in view mode for an appointment of the
// loaded collection.
func (s *Session) ViewAppointment(id string) (*FormData, apierror.ErrorResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, apierror.NotFoundError
	}
	s.dialog = Dialog{Open: true, Mode: DialogView, AppointmentID: id}
	return toFormData(s.toDisplayLocked(s.snap.records[idx])), nil
}

func (s *Session) indexLocked(id string) int {
	for i, rec := range s.snap.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func (s *Session) toDisplayLocked(rec *entity.Appointment) calendar.Appointment {
	return s.svc.mapper.ToDisplay(rec, s.snap.patients, s.snap.categories)
}

// CreateAppointment appends the new appointment to the collection before
// persisting it. A failed write stays in the collection unless rollback of
// failed writes is enabled. The dialog is closed either way.
func (s *Session) CreateAppointment(ctx context.Context, form *AppointmentForm) (*WriteResult, apierror.ErrorResponse) {
	utils.Sanitize(form)
	if valerr := s.svc.Validate.Struct(form); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}
	rec, err := s.recordFromForm(form)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	before := s.snap.records
	s.snap.records = append(append([]*entity.Appointment(nil), before...), rec)
	s.dialog = Dialog{}

	created, err := s.selector.Current().CreateAppointment(ctx, cloneRecord(rec))
	if err == nil && created == nil {
		err = errNoRecord
	}
	if err != nil {
		log.Errorf("session %s: creating appointment %s failed: %v", s.ID, rec.ID, err)
		if s.svc.opts.RollbackFailedWrites {
			s.snap.records = before
		}
		return &WriteResult{Appointment: s.toDisplayLocked(rec), Dialog: s.dialog, Notification: saveFailed}, nil
	}

	s.snap.records[len(s.snap.records)-1] = created
	return &WriteResult{
		Appointment:  s.toDisplayLocked(created),
		Persisted:    true,
		Dialog:       s.dialog,
		Notification: createdNotification(created.Title),
	}, nil
}

// UpdateAppointment changes an appointment of the collection in place and
// then persists the change. Failure handling matches CreateAppointment.
func (s *Session) UpdateAppointment(ctx context.Context, id string, upd *AppointmentUpdate) (*WriteResult, apierror.ErrorResponse) {
	utils.Sanitize(upd)
	if valerr := s.svc.Validate.Struct(upd); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, apierror.NotFoundError
	}
	existing := s.snap.records[idx]
	patch, err := s.patchFromUpdate(existing, upd)
	if err != nil {
		return nil, apierror.MalformedBodyError
	}

	optimistic := cloneRecord(existing)
	patch.Apply(optimistic)
	optimistic.UpdatedAt = s.svc.opts.Now()
	s.snap.records[idx] = optimistic
	s.dialog = Dialog{}

	stored, err := s.selector.Current().UpdateAppointment(ctx, id, patch)
	if err != nil {
		log.Errorf("session %s: updating appointment %s failed: %v", s.ID, id, err)
		if s.svc.opts.RollbackFailedWrites {
			s.snap.records[idx] = existing
		}
		return &WriteResult{Appointment: s.toDisplayLocked(s.snap.records[idx]), Dialog: s.dialog, Notification: saveFailed}, nil
	}

	// The store may echo only the patched fields, so the merged local record
	// is kept and takes the store's updated_at.
	if stored != nil && !stored.UpdatedAt.IsZero() {
		optimistic.UpdatedAt = stored.UpdatedAt
	}
	return &WriteResult{
		Appointment:  s.toDisplayLocked(optimistic),
		Persisted:    true,
		Dialog:       s.dialog,
		Notification: updatedNotification(optimistic.Title),
	}, nil
}

// Record returns a copy of the raw record with the id, nil when it is not
// in the collection.
func (s *Session) Record(id string) *entity.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return cloneRecord(s.snap.records[idx])
	}
	return nil
}

func (s *Session) recordFromForm(form *AppointmentForm) (*entity.Appointment, error) {
	day, err := calendar.ParseDay(form.Date, s.svc.opts.Location)
	if err != nil {
		return nil, err
	}
	start, err := day.At(form.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := day.At(form.EndTime)
	if err != nil {
		return nil, err
	}

	now := s.svc.opts.Now()
	return &entity.Appointment{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		Start:      start,
		End:        end,
		Location:   form.Location,
		PatientID:  form.Patient,
		CategoryID: form.Category,
		Notes:      form.Notes,
		Title:      form.Title,
	}, nil
}

// patchFromUpdate resolves date and time fields against the existing record:
// a new date keeps the old wall-clock times, a new time keeps the old date.
func (s *Session) patchFromUpdate(existing *entity.Appointment, upd *AppointmentUpdate) (*entity.AppointmentPatch, error) {
	loc := s.svc.opts.Location
	patch := &entity.AppointmentPatch{
		Title:      upd.Title,
		Location:   upd.Location,
		PatientID:  upd.Patient,
		CategoryID: upd.Category,
		Notes:      upd.Notes,
	}

	day := calendar.DayOf(existing.Start, loc)
	if upd.Date != nil {
		parsed, err := calendar.ParseDay(*upd.Date, loc)
		if err != nil {
			return nil, err
		}
		day = parsed
	}
	if upd.Date != nil || upd.StartTime != nil {
		clock := calendar.Clock(existing.Start, loc)
		if upd.StartTime != nil {
			clock = *upd.StartTime
		}
		start, err := day.At(clock)
		if err != nil {
			return nil, err
		}
		patch.Start = &start
	}
	if upd.Date != nil || upd.EndTime != nil {
		clock := calendar.Clock(existing.End, loc)
		if upd.EndTime != nil {
			clock = *upd.EndTime
		}
		end, err := day.At(clock)
		if err != nil {
			return nil, err
		}
		patch.End = &end
	}
	return patch, nil
}

func cloneRecord(rec *entity.Appointment) *entity.Appointment {
	c := *rec
	if rec.Attachments != nil {
		c.Attachments = append(c.Attachments[:0:0], rec.Attachments...)
	}
	return &c
}
