package history

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens (creating if necessary) a SQLite-backed history store
// at dsn and runs migrations, mirroring the teacher's db.Connect
// (db/sqlite.go) minus the libsql/remote-URL branch, which this
// single-user CLI tool has no use for.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
	}

	gcfg := &gorm.Config{}
	if debug {
		gcfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history store: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("history migration failed: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the history schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Session{}, &Command{})
}
