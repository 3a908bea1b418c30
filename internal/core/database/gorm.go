package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

var ErrUnsupportedDriver = fmt.Errorf("database: unsupported driver")

type Opts struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	ConnectAttempts    int
	ConnectBackoffSec  int
	LogLevel           string
}

// NewGorm opens the database with a bounded pool and pings it with
// retry-and-backoff. Retries happen at startup only, never per request.
func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dial = mysql.Open(o.DSN)
	case "sqlite":
		dial = sqlite.Open(o.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, o.Driver)
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	attempts := o.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}
	backoff := time.Duration(o.ConnectBackoffSec) * time.Second
	for i := 1; ; i++ {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		if i >= attempts {
			return nil, fmt.Errorf("database: ping after %d attempts: %w", attempts, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	return db.Session(&gorm.Session{PrepareStmt: true}), nil
}
