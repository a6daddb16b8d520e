package database

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"patientsapi/cmd/internal/config"
	"patientsapi/cmd/internal/domain/entity"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the configured database and creates the patients and
// appointments tables when they are missing.
func Init(cfg *config.Config) (*gorm.DB, error) {
	return open(cfg, os.Stdout)
}

func open(cfg *config.Config, logOut io.Writer) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newLogger(logOut),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Patient{}, &entity.Appointment{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer, so keep one connection around.
	if cfg.DatabaseDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger reports slow queries and real failures only. A missing row is
// an ordinary 404 and is not logged.
func newLogger(out io.Writer) logger.Interface {
	return logger.New(stdlog.New(out, "\r\n", stdlog.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DatabaseURL), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DatabaseURL), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
}
