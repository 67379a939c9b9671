package storage

import (
	"pokerquest/internal/game"
)

// Repository is the persistence boundary for encounters. Implementations
// must round-trip combatants and their condition sets exactly (names,
// durations, elapsed counters, payloads) so a run can be restored
// mid-encounter without invoking any game logic.
type Repository interface {
	CreateEncounter(e *game.Encounter) error
	GetEncounterByUUID(uuid string) (*game.Encounter, error)
	UpdateEncounter(e *game.Encounter) error
	// ListRecentEncounters returns the newest encounters first.
	ListRecentEncounters(limit int) ([]game.Encounter, error)
	DeleteEncounter(uuid string) error
}
