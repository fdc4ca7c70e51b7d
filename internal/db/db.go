package db

import (
	"errors"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the archive database. A DATABASE_URL-style DSN selects
// Postgres; otherwise path names a local SQLite file (":memory:" works for
// tests). SQLite connections get foreign key enforcement turned on.
func Open(dsn, path string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}
	if path == "" {
		return nil, errors.New("no database configured: set DATABASE_URL or DB_PATH")
	}
	conn, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), cfg)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate runs GORM auto-migrations for the core tables. The canonical
// schema with its full check constraints lives in db/migrations; this keeps
// dev and test databases usable without the migrate binary.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&Image{},
		&Painting{},
		&PaintingImage{},
		&Rating{},
		&Session{},
		&Event{},
	); err != nil {
		return err
	}
	log.Println("database migration complete")
	return nil
}

// Now returns the current UTC time in the archive's text timestamp form.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}
