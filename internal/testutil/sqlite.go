package testutil

import (
	"path/filepath"
	"testing"

	"aristobox/internal/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SQLiteConfig: конфиг файловой базы во временном каталоге теста.
func SQLiteConfig(t *testing.T) database.Config {
	t.Helper()
	return database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "aristobox_test.db"),
	}
}

// SetupTestSQLite открывает чистую базу без схемы; закрывается в t.Cleanup.
func SetupTestSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := SQLiteConfig(t)
	db, err := database.Open(&cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db, zap.NewNop()) })
	return db
}
