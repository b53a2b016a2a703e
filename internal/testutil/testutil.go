// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"retroboard/internal/config"
	"retroboard/internal/db"
	"retroboard/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewDB returns a migrated SQLite database in t's temp dir, closed on cleanup.
// One connection keeps SQLite writers serialized like a single pooled handle.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "retro.db")
	gdb, err := db.Open(config.DatabaseConfig{
		URL:          "sqlite://" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, zerolog.Nop(), time.Second)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close(gdb)
	})
	return gdb
}

// CreateUser inserts an anonymous user directly.
func CreateUser(t *testing.T, gdb *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.NewString(),
		Username:    username,
		AccountType: models.AccountTypeAnonymous,
	}
	if err := gdb.WithContext(context.Background()).Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}
