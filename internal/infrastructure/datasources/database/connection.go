package database

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"brand-connector.backend/internal/config"
	"brand-connector.backend/pkg/logger"
)

var (
	gormOpen = gorm.Open
	dbPing   = func(db *sql.DB) error { return db.Ping() }
)

// zapWriter feeds gorm's formatted log lines into zap
type zapWriter struct {
	l *zap.Logger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.l.Warn(fmt.Sprintf(format, args...))
}

// newGormLogger logs slow queries and errors. Lookups that miss are an
// expected outcome for repositories, so record-not-found stays silent.
func newGormLogger(l *zap.Logger) gormlogger.Interface {
	return gormlogger.New(zapWriter{l: l.Named("gorm")}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.URL()), nil
	case "postgres", "":
		return postgres.New(postgres.Config{
			DSN:                  cfg.URL(),
			PreferSimpleProtocol: true,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewConnection opens the configured database and checks that it answers.
// Driver errors such as duplicate keys are translated into gorm's sentinels.
func NewConnection(cfg config.DatabaseConfig) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gormOpen(d, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(logger.GetLogger()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get generic database object: %w", err)
	}
	if err := dbPing(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
