package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/calendar"
	"github.com/amritkc/vocareapp/cmd/internal/config"
	"github.com/amritkc/vocareapp/cmd/internal/datasource"
	"github.com/amritkc/vocareapp/cmd/internal/domain/sqldb"
	"github.com/amritkc/vocareapp/cmd/internal/domain/sqldb/repository"
	"github.com/amritkc/vocareapp/cmd/internal/gateway"
	"github.com/amritkc/vocareapp/cmd/internal/integration/supabase"
	"github.com/amritkc/vocareapp/cmd/internal/mockdata"
	"github.com/amritkc/vocareapp/cmd/internal/routes"
	"github.com/amritkc/vocareapp/cmd/internal/service"
	"github.com/amritkc/vocareapp/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vocare",
		Short: "Care calendar API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(monthCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calendar API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the bootstrap data set into the SQL store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := sqldb.Init(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			return seed(cmd.Context(), db, mockdata.NewDataset())
		},
	}
}

func weekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the week grid of a day as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printView(cmd, func(session *service.Session, day *calendar.Day) any {
				return session.Week(day)
			})
		},
	}
	cmd.Flags().String("date", "", "any day of the week, YYYY-MM-DD")
	cmd.Flags().Bool("mock", true, "use mock data instead of the configured store")
	return cmd
}

func monthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the month grid of a day as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printView(cmd, func(session *service.Session, day *calendar.Day) any {
				return session.Month(day, day)
			})
		},
	}
	cmd.Flags().String("date", "", "selected day, YYYY-MM-DD")
	cmd.Flags().Bool("mock", true, "use mock data instead of the configured store")
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	remote, err := newRemote(cfg)
	if err != nil {
		log.Fatal("failed to initialize data store: ", err)
	}

	validate := validator.New()
	validators.Register(validate)

	calendarService := service.NewCalendarService(mockdata.NewProvider(), remote, validate, service.OptionsFromConfig(cfg))
	sessions := service.NewSessions(calendarService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go sessions.PruneEvery(ctx, time.Minute, cfg.SessionIdleTimeout)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))

	routes.Register(e,
		routes.NewAppointmentDefault(calendarService),
		routes.NewDirectoryDefault(calendarService),
		routes.NewSessionDefault(sessions, cfg.Location()),
	)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newRemote connects the configured store behind the gateway.
func newRemote(cfg *config.Config) (datasource.Source, error) {
	var stores gateway.Stores
	switch cfg.StoreDriver {
	case config.DriverSupabase:
		client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, err
		}
		stores = supabase.NewStores(client)
	default:
		db, err := sqldb.Init(cfg)
		if err != nil {
			return nil, err
		}
		stores = repository.NewStores(db)
	}
	log.Infof("remote data store: %s", cfg.StoreDriver)
	return gateway.New(stores), nil
}

// seed inserts every record of ds, leaving rows that already exist alone.
func seed(ctx context.Context, db *gorm.DB, ds *mockdata.Dataset) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rows := range []any{
			ds.Categories, ds.Patients, ds.Relatives, ds.Users,
			ds.Appointments, ds.Assignments, ds.Activities,
		} {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error; err != nil {
				return err
			}
		}
		log.Infof("seeded %d appointments", len(ds.Appointments))
		return nil
	})
}

func printView(cmd *cobra.Command, build func(*service.Session, *calendar.Day) any) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	useMock, _ := cmd.Flags().GetBool("mock")

	var remote datasource.Source = mockdata.NewProvider()
	if !useMock {
		if remote, err = newRemote(cfg); err != nil {
			return err
		}
	}

	validate := validator.New()
	validators.Register(validate)
	svc := service.NewCalendarService(mockdata.NewProvider(), remote, validate, service.OptionsFromConfig(cfg))

	var day *calendar.Day
	if raw, _ := cmd.Flags().GetString("date"); raw != "" {
		parsed, err := calendar.ParseDay(raw, cfg.Location())
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		day = &parsed
	}

	session, state := service.NewSessions(svc).Open(cmd.Context(), &useMock)
	if n := state.Notification; n != nil && n.Kind == service.NotifyError {
		return fmt.Errorf("%s: %s", n.Title, n.Description)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(build(session, day))
}
