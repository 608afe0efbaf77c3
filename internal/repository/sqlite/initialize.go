package sqlite

import (
	"os"
	"path/filepath"

	"github.com/isaacphi/tirc/internal/domain"
	"github.com/isaacphi/tirc/internal/repository"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens the SQLite profile store at dbPath, creating the parent
// directory and running migrations.
func Initialize(dbPath string) (repository.ProfileRepository, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create database directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.AutoMigrate(&domain.Profile{}); err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return NewProfileRepository(db), nil
}
