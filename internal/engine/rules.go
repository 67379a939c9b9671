package engine

import "pokerquest/internal/poker"

// ConditionChance is one band in an on-hit probability table. Bands are
// cumulative and non-overlapping: a single uniform roll selects at most one
// condition per attack.
type ConditionChance struct {
	Condition   string  `json:"condition"`
	Probability float64 `json:"probability"`
}

// BossRule describes how the boss behaves on a turn it is selected. A rule
// with Cadence N acts only every Nth turn.
type BossRule struct {
	Name             string            `json:"name"`
	Cadence          int               `json:"cadence"`
	AttackMultiplier float64           `json:"attack_multiplier"`
	OnHit            []ConditionChance `json:"on_hit"`
}

// EncounterRules is the plain-data, per-stage configuration consumed by the
// turn engine. It is passed in at construction and never reached for as
// ambient state.
type EncounterRules struct {
	StageName string

	// DamageReduction shaves player damage on the boss (0.25 = -25%).
	DamageReduction float64
	// BannedCategory zeroes player damage for one hand category, if set.
	BannedCategory *poker.HandCategory

	// BossRules is the rule pool. One rule applies per turn: the single
	// entry when there is one, a uniformly random pick when there are more.
	BossRules []BossRule

	// PlayerOnHit is rolled against the boss after a landed player attack.
	PlayerOnHit []ConditionChance

	// AttackGrowthFactor scales the boss attack stat at the end of every
	// turn the boss acted (2 doubles it). Zero disables growth.
	AttackGrowthFactor float64

	// RegenThreshold grants the boss a permanent regeneration of
	// RegenAmount once its HP falls below the threshold fraction of MaxHP.
	RegenThreshold float64
	RegenAmount    int
}

// normalized returns the rule with defaults filled in.
func (r BossRule) normalized() BossRule {
	if r.Cadence < 1 {
		r.Cadence = 1
	}
	if r.AttackMultiplier == 0 {
		r.AttackMultiplier = 1
	}
	return r
}
