package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"retroboard/internal/config"
	"retroboard/internal/logger"
	"retroboard/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const sqlitePrefix = "sqlite://"

// Open connects once, applies pool settings and migrates the schema.
// The returned handle is shared by every repository for the process lifetime.
func Open(cfg config.DatabaseConfig, log zerolog.Logger, slowThreshold time.Duration) (*gorm.DB, error) {
	db, err := gorm.Open(dialector(cfg.URL), &gorm.Config{
		Logger:         logger.NewGormLogger(log, slowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info().Str("driver", db.Dialector.Name()).Msg("database connection established")

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, err
	}
	log.Info().Msg("database migration completed")

	return db, nil
}

// Migrate creates or updates the tables. Order matters for foreign keys.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Column{},
		&models.Post{},
		&models.Vote{},
	)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Ping checks the pooled connection, used by the health endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialector(url string) gorm.Dialector {
	if strings.HasPrefix(url, sqlitePrefix) {
		return sqlite.Open(strings.TrimPrefix(url, sqlitePrefix))
	}
	return postgres.Open(url)
}
