package storage

import (
	"errors"

	"pokerquest/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a migrated gorm handle in the Repository
// interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateEncounter(e *game.Encounter) error {
	return r.db.Create(e).Error
}

func (r *sqliteRepository) GetEncounterByUUID(uuid string) (*game.Encounter, error) {
	var e game.Encounter
	err := r.db.Where("encounter_uuid = ?", uuid).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *sqliteRepository) UpdateEncounter(e *game.Encounter) error {
	return r.db.Save(e).Error
}

func (r *sqliteRepository) ListRecentEncounters(limit int) ([]game.Encounter, error) {
	var out []game.Encounter
	if limit <= 0 {
		limit = 20
	}
	err := r.db.Order("created_at desc").Limit(limit).Find(&out).Error
	return out, err
}

func (r *sqliteRepository) DeleteEncounter(uuid string) error {
	return r.db.Where("encounter_uuid = ?", uuid).Delete(&game.Encounter{}).Error
}
