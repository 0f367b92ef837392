package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverSupabase = "supabase"
)

type Config struct {
	Port                 string        `mapstructure:"PORT"`
	StoreDriver          string        `mapstructure:"STORE_DRIVER"`
	SQLitePath           string        `mapstructure:"SQLITE_PATH"`
	DatabaseURL          string        `mapstructure:"DATABASE_URL"`
	SupabaseURL          string        `mapstructure:"SUPABASE_URL"`
	SupabaseKey          string        `mapstructure:"SUPABASE_KEY"`
	UseMockData          bool          `mapstructure:"USE_MOCK_DATA"`
	Timezone             string        `mapstructure:"TIMEZONE"`
	WeekScale            float64       `mapstructure:"WEEK_SCALE"`
	MinBlockHeight       float64       `mapstructure:"MIN_BLOCK_HEIGHT"`
	RollbackFailedWrites bool          `mapstructure:"ROLLBACK_FAILED_WRITES"`
	CORSOrigins          []string      `mapstructure:"CORS_ORIGINS"`
	SessionIdleTimeout   time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`

	location *time.Location
}

var keys = []string{
	"PORT", "STORE_DRIVER", "SQLITE_PATH", "DATABASE_URL", "SUPABASE_URL", "SUPABASE_KEY",
	"USE_MOCK_DATA", "TIMEZONE", "WEEK_SCALE", "MIN_BLOCK_HEIGHT", "ROLLBACK_FAILED_WRITES",
	"CORS_ORIGINS", "SESSION_IDLE_TIMEOUT",
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded, using process environment: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "6060")
	v.SetDefault("STORE_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_PATH", "./database.db")
	v.SetDefault("USE_MOCK_DATA", false)
	v.SetDefault("TIMEZONE", "Europe/Berlin")
	v.SetDefault("WEEK_SCALE", 1440)
	v.SetDefault("MIN_BLOCK_HEIGHT", 25)
	v.SetDefault("ROLLBACK_FAILED_WRITES", false)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SESSION_IDLE_TIMEOUT", "30m")

	// Unmarshal only sees env vars that were bound explicitly
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) <= 1 {
		if origins := v.GetString("CORS_ORIGINS"); origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the store selection and the calendar settings, and
// resolves the configured timezone.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER is %q", DriverSQLite)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is %q", DriverPostgres)
		}
	case DriverSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_KEY are required when STORE_DRIVER is %q", DriverSupabase)
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %q, %q or %q, got %q", DriverSQLite, DriverPostgres, DriverSupabase, c.StoreDriver)
	}

	if c.WeekScale <= 0 {
		return fmt.Errorf("WEEK_SCALE must be positive, got %v", c.WeekScale)
	}
	if c.MinBlockHeight < 0 {
		return fmt.Errorf("MIN_BLOCK_HEIGHT must not be negative, got %v", c.MinBlockHeight)
	}

	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %v", c.SessionIdleTimeout)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	c.location = loc
	return nil
}

// Location is the timezone used as "local time" by the calendar. It falls
// back to UTC on a config that was never validated.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
