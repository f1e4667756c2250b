package store

import (
	"fmt"
	"testing"

	"keyblogger/internal/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a per-test in-memory database with the full schema. The
// shared cache keeps every pooled connection on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.Migrate(g); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return g
}

// seedUser registers a user directly, skipping handler plumbing.
func seedUser(t *testing.T, g *gorm.DB, username string) {
	t.Helper()
	_, err := NewUserStore(g).Register(username, "password123")
	require.NoError(t, err)
}
