// Package database manages the database connection and schema for the auth service.
package database

import (
	"fmt"

	"github.com/spring-security-spring-cloud/auth-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens a database connection for the configured driver.
// Driver errors such as unique-constraint violations are translated to
// gorm sentinel errors so callers can match them with errors.Is.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DBPath), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.DBPath, err)
		}
		// sqlite allows one writer at a time; a single pooled connection
		// also keeps in-memory databases on the same handle.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sqlite pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}
