package testutils

import (
	"fmt"
	"testing"

	"conservation-portal-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a fresh in-memory database with the full schema migrated.
// Service-level tests use it to exercise real transactions without Docker.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps one schema visible across pooled
	// connections; the random name isolates parallel tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
