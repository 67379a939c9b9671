package service

import (
	"math/rand"

	"pokerquest/internal/config"
	"pokerquest/internal/engine"
	"pokerquest/internal/game"
	"pokerquest/internal/poker"
	"pokerquest/internal/storage"

	"github.com/google/uuid"
)

// StartEncounter creates and persists a fresh run against the named stage:
// combatants at their configured base stats, the player's permanent unlock
// conditions applied, and an opening hand dealt. The seed drives every
// random roll of the run so a fixed seed replays identically.
func StartEncounter(repo storage.Repository, cfg *config.LoadedConfig, stageName string, seed int64) (*game.Encounter, error) {
	stage, ok := cfg.StageByName(stageName)
	if !ok {
		return nil, ErrStageNotFound
	}

	rng := rand.New(rand.NewSource(seed))

	player := game.NewCombatant("player", stage.PlayerHitPoints, stage.PlayerAttack)
	for _, cond := range stage.PlayerConditions {
		engine.ApplyCondition(rng, &player, cond)
	}
	boss := game.NewCombatant(stage.BossName, stage.BossHitPoints, stage.BossAttack)

	deck := poker.NewDeck(rng, cfg.WildcardChance)
	hand := deck.Draw(cfg.HandSize, nil)

	enc := &game.Encounter{
		EncounterUUID: uuid.NewString(),
		StageName:     stage.Name,
		Status:        game.StatusInProgress,
		Seed:          seed,
		Player:        player,
		Boss:          boss,
		Hand:          hand,
	}
	if err := repo.CreateEncounter(enc); err != nil {
		return nil, err
	}
	return enc, nil
}

// GetEncounter loads an encounter by UUID.
func GetEncounter(repo storage.Repository, encounterUUID string) (*game.Encounter, error) {
	enc, err := repo.GetEncounterByUUID(encounterUUID)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nil, ErrEncounterNotFound
	}
	return enc, nil
}

// ListEncounters returns the newest encounters first, capped at limit.
func ListEncounters(repo storage.Repository, limit int) ([]game.Encounter, error) {
	if limit <= 0 {
		limit = 20
	}
	return repo.ListRecentEncounters(limit)
}

// DeleteEncounter removes a persisted run entirely.
func DeleteEncounter(repo storage.Repository, encounterUUID string) error {
	if _, err := GetEncounter(repo, encounterUUID); err != nil {
		return err
	}
	return repo.DeleteEncounter(encounterUUID)
}

// ResignEncounter abandons an in-progress run.
func ResignEncounter(repo storage.Repository, encounterUUID string) (*game.Encounter, error) {
	enc, err := GetEncounter(repo, encounterUUID)
	if err != nil {
		return nil, err
	}
	if enc.Status != game.StatusInProgress {
		return nil, ErrEncounterFinished
	}
	enc.Status = game.StatusAbandoned
	if err := repo.UpdateEncounter(enc); err != nil {
		return nil, err
	}
	return enc, nil
}
