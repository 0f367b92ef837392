package sqldb

import (
	"fmt"
	"time"

	"github.com/amritkc/vocareapp/cmd/internal/config"
	"github.com/amritkc/vocareapp/cmd/internal/domain/entity"
	"github.com/amritkc/vocareapp/cmd/internal/utils"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the SQL store selected by cfg and migrates the calendar schema.
func Init(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("store driver %q is not a SQL driver", cfg.StoreDriver)
	}
	return Open(dialector, cfg.StoreDriver == config.DriverSQLite)
}

// Open opens and migrates a store through the given dialector. SQLite only
// tolerates a single writer, so its pool is pinned to one connection.
func Open(dialector gorm.Dialector, singleConn bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: utils.NowUTC,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Category{},
		&entity.Patient{},
		&entity.Relative{},
		&entity.User{},
		&entity.Appointment{},
		&entity.Assignment{},
		&entity.Activity{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if singleConn {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// OpenMemory opens a private in-memory SQLite store.
func OpenMemory() (*gorm.DB, error) {
	return Open(sqlite.Open("file::memory:"), true)
}
