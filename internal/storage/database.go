package storage

import (
	"os"
	"path/filepath"

	"pokerquest/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens (creating parent directories when needed) the sqlite
// database at path and migrates the encounter schema.
func OpenDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Encounter{}); err != nil {
		return nil, err
	}
	return db, nil
}
