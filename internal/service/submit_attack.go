package service

import (
	"encoding/json"
	"math/rand"

	"pokerquest/internal/config"
	"pokerquest/internal/engine"
	"pokerquest/internal/game"
	"pokerquest/internal/logging"
	"pokerquest/internal/poker"
	"pokerquest/internal/storage"
)

// turnSeedStride decorrelates per-turn RNG streams derived from the
// encounter seed.
const turnSeedStride = 7919

// engineFor rebuilds the turn engine for a persisted encounter. The RNG is
// derived from the encounter seed and turn counter so replaying a persisted
// turn rolls the same outcomes.
func engineFor(enc *game.Encounter, stage *config.Stage) (*engine.Engine, *rand.Rand) {
	rng := rand.New(rand.NewSource(enc.Seed + int64(enc.Turn)*turnSeedStride))
	e := engine.New(rng, stage.Rules, &enc.Player, &enc.Boss)
	e.ResumeAt(enc.Turn)
	return e, rng
}

// SubmitAttack plays one full turn: the selected cards are scored and
// applied to the boss, the boss reacts per the stage rules, and end-of-turn
// condition ticking runs. The ordered action list is returned for the
// presentation layer; the updated encounter is persisted before returning.
func SubmitAttack(repo storage.Repository, cfg *config.LoadedConfig, encounterUUID string, cardIndexes []int) (*game.Encounter, []engine.Action, error) {
	enc, err := GetEncounter(repo, encounterUUID)
	if err != nil {
		return nil, nil, err
	}
	if enc.Status != game.StatusInProgress {
		return nil, nil, ErrEncounterFinished
	}
	selected, err := pickCards(enc.Hand, cardIndexes, cfg.MaxAttackCards)
	if err != nil {
		return nil, nil, err
	}

	stage, ok := cfg.StageByName(enc.StageName)
	if !ok {
		return nil, nil, ErrStageNotFound
	}
	e, rng := engineFor(enc, stage)

	actions := []engine.Action{}
	if e.PlayerParalyzed() {
		// The paralyzed player forfeits the attack; the turn still runs.
		actions = append(actions, engine.Action{Type: engine.ActionSkipped, Target: engine.TargetPlayer})
	} else {
		res := e.ResolvePlayerAttack(selected)
		actions = append(actions, engine.NewImpactAction(res))
		actions = append(actions, e.ApplyPlayerAttack(res)...)
		consumeCards(enc, cardIndexes)
	}

	actions = append(actions, runBossAndEndOfTurn(e)...)
	finishTurn(enc, e, cfg, rng, actions)
	logging.Debug("turn resolved", logging.Fields{
		"encounter": enc.EncounterUUID,
		"turn":      enc.Turn,
		"status":    enc.Status,
		"actions":   len(actions),
	})

	if err := repo.UpdateEncounter(enc); err != nil {
		return nil, actions, err
	}
	return enc, actions, nil
}

// SwapCards spends the turn exchanging the selected cards for fresh draws.
// The boss still takes its turn and conditions still tick.
func SwapCards(repo storage.Repository, cfg *config.LoadedConfig, encounterUUID string, cardIndexes []int) (*game.Encounter, []engine.Action, error) {
	enc, err := GetEncounter(repo, encounterUUID)
	if err != nil {
		return nil, nil, err
	}
	if enc.Status != game.StatusInProgress {
		return nil, nil, ErrEncounterFinished
	}
	if _, err := pickCards(enc.Hand, cardIndexes, len(enc.Hand)); err != nil {
		return nil, nil, err
	}

	stage, ok := cfg.StageByName(enc.StageName)
	if !ok {
		return nil, nil, ErrStageNotFound
	}
	e, rng := engineFor(enc, stage)

	consumeCards(enc, cardIndexes)
	actions := runBossAndEndOfTurn(e)
	finishTurn(enc, e, cfg, rng, actions)

	if err := repo.UpdateEncounter(enc); err != nil {
		return nil, actions, err
	}
	return enc, actions, nil
}

// runBossAndEndOfTurn sequences the boss reaction and the end-of-turn tick,
// stopping early on a mid-turn kill.
func runBossAndEndOfTurn(e *engine.Engine) []engine.Action {
	actions := []engine.Action{}
	if e.CheckStatus() != engine.Ongoing {
		return actions
	}
	imp := e.ResolveBossAttack()
	actions = append(actions, e.ApplyBossAttack(imp)...)
	if e.CheckStatus() != engine.Ongoing {
		return actions
	}
	actions = append(actions, e.ProcessEndTurn()...)
	return actions
}

// finishTurn folds the engine outcome back into the persisted encounter:
// status, turn counter, hand refill and the serialized action log.
func finishTurn(enc *game.Encounter, e *engine.Engine, cfg *config.LoadedConfig, rng *rand.Rand, actions []engine.Action) {
	enc.Turn = e.Turn()

	switch e.CheckStatus() {
	case engine.PlayerWon:
		enc.Status = game.StatusPlayerWon
		// Stage transition: timed conditions drop, permanent unlocks stay.
		engine.ClearConditions(&enc.Player)
	case engine.PlayerLost:
		enc.Status = game.StatusPlayerLost
	default:
		refillHand(enc, cfg, rng)
	}

	if b, err := json.Marshal(actions); err == nil {
		enc.LastTurnLog = string(b)
	}
}

// refillHand draws replacements up to the configured hand size, never
// re-dealing a card already held.
func refillHand(enc *game.Encounter, cfg *config.LoadedConfig, rng *rand.Rand) {
	missing := cfg.HandSize - len(enc.Hand)
	if missing <= 0 {
		return
	}
	maxID := 0
	for _, c := range enc.Hand {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	deck := poker.NewDeck(rng, cfg.WildcardChance)
	drawn := deck.Draw(missing, enc.Hand)
	for i := range drawn {
		maxID++
		drawn[i].ID = maxID
	}
	enc.Hand = append(enc.Hand, drawn...)
}

// pickCards validates the selection and returns the chosen cards in order.
func pickCards(hand []game.Card, indexes []int, max int) ([]game.Card, error) {
	if len(indexes) == 0 {
		return nil, ErrNoCardsSelected
	}
	if len(indexes) > max {
		return nil, ErrTooManyCards
	}
	seen := map[int]bool{}
	out := make([]game.Card, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(hand) || seen[i] {
			return nil, ErrInvalidSelection
		}
		seen[i] = true
		out = append(out, hand[i])
	}
	return out, nil
}

// consumeCards removes the selected positions from the hand.
func consumeCards(enc *game.Encounter, indexes []int) {
	drop := map[int]bool{}
	for _, i := range indexes {
		drop[i] = true
	}
	kept := enc.Hand[:0]
	for i, c := range enc.Hand {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	enc.Hand = kept
}
