package service

import (
	"context"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/config"
	"github.com/amritkc/vocareapp/cmd/internal/datasource"
	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type Options struct {
	UseMockData          bool
	Location             *time.Location
	Scale                calendar.Scale
	RollbackFailedWrites bool
	Now                  func() time.Time
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		UseMockData:          cfg.UseMockData,
		Location:             cfg.Location(),
		Scale:                calendar.Scale{Extent: cfg.WeekScale, MinBlockHeight: cfg.MinBlockHeight},
		RollbackFailedWrites: cfg.RollbackFailedWrites,
		Now:                  time.Now,
	}
}

// DefaultCalendarService answers calendar queries against either data
// source. It holds no view state; sessions keep their own.
type DefaultCalendarService struct {
	Mock     datasource.Source
	Remote   datasource.Source
	Validate *validator.Validate

	opts   Options
	mapper *calendar.Mapper
}

func NewCalendarService(mock, remote datasource.Source, validate *validator.Validate, opts Options) *DefaultCalendarService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Scale.Extent <= 0 {
		opts.Scale = calendar.DefaultScale
	}
	return &DefaultCalendarService{
		Mock:     mock,
		Remote:   remote,
		Validate: validate,
		opts:     opts,
		mapper:   calendar.NewMapper(opts.Location),
	}
}

// Selector returns a fresh selector, starting from the configured default
// unless mock is set.
func (s *DefaultCalendarService) Selector(mock *bool) *datasource.Selector {
	useMock := s.opts.UseMockData
	if mock != nil {
		useMock = *mock
	}
	return datasource.NewSelector(s.Mock, s.Remote, useMock)
}

func (s *DefaultCalendarService) Location() *time.Location {
	return s.opts.Location
}

func (s *DefaultCalendarService) today() calendar.Day {
	return calendar.DayOf(s.opts.Now(), s.opts.Location)
}

// snapshot is everything a view needs to render: raw records plus the
// lookups the mapper resolves against.
type snapshot struct {
	records    []*entity.Appointment
	patients   []*entity.Patient
	categories []*entity.Category
}

func (sn *snapshot) display(m *calendar.Mapper) []calendar.Appointment {
	return m.ToDisplayAll(sn.records, sn.patients, sn.categories)
}

// load fetches appointments plus patients and categories. Any failure fails
// the whole load. Empty criteria take the unfiltered path.
func (s *DefaultCalendarService) load(ctx context.Context, src datasource.Source, c calendar.Criteria) (*snapshot, error) {
	var (
		records []*entity.Appointment
		err     error
	)
	if c.IsEmpty() {
		records, err = src.ListAppointments(ctx)
	} else {
		records, err = src.FilterAppointments(ctx, c.Query(s.opts.Location))
	}
	if err != nil {
		return nil, err
	}

	patients, err := src.ListPatients(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := src.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot{records: records, patients: patients, categories: categories}, nil
}

// GetCalendarAppointments returns every appointment in display form, or nil
// with the failure when any of the three reads fails.
func (s *DefaultCalendarService) GetCalendarAppointments(ctx context.Context, sel *datasource.Selector) ([]calendar.Appointment, error) {
	snap, err := s.load(ctx, sel.Current(), calendar.Criteria{})
	if err != nil {
		log.Warnf("calendar appointments from %s unavailable: %v", sel.Name(), err)
		return nil, err
	}
	return snap.display(s.mapper), nil
}

// GetFilteredCalendarAppointments is GetCalendarAppointments restricted to
// c. Empty criteria short-circuit to the unfiltered query.
func (s *DefaultCalendarService) GetFilteredCalendarAppointments(ctx context.Context, sel *datasource.Selector, c calendar.Criteria) ([]calendar.Appointment, error) {
	if c.IsEmpty() {
		return s.GetCalendarAppointments(ctx, sel)
	}
	snap, err := s.load(ctx, sel.Current(), c)
	if err != nil {
		log.Warnf("filtered calendar appointments from %s unavailable: %v", sel.Name(), err)
		return nil, err
	}
	return snap.display(s.mapper), nil
}
