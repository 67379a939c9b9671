package engine

import (
	"pokerquest/internal/game"
	"pokerquest/internal/poker"
)

// ActionType names an abstract effect in the turn playback list.
type ActionType string

const (
	ActionImpact           ActionType = "impact"
	ActionDamage           ActionType = "damage"
	ActionHeal             ActionType = "heal"
	ActionAvoided          ActionType = "avoided"
	ActionConditionApplied ActionType = "condition_applied"
	ActionSkipped          ActionType = "skipped"
	ActionStatGrowth       ActionType = "stat_growth"
)

// TargetSide says which combatant an action refers to.
type TargetSide string

const (
	TargetPlayer TargetSide = "player"
	TargetBoss   TargetSide = "boss"
)

// Action is one timed effect descriptor for the presentation layer. The
// core never sleeps or animates; TimingHint is a suggested playback delay
// in seconds.
type Action struct {
	Type       ActionType         `json:"type"`
	TimingHint float64            `json:"timing_hint"`
	Target     TargetSide         `json:"target,omitempty"`
	Amount     int                `json:"amount,omitempty"`
	Critical   bool               `json:"critical,omitempty"`
	Category   string             `json:"category,omitempty"`
	Banned     bool               `json:"banned,omitempty"`
	Condition  game.ConditionName `json:"condition,omitempty"`
}

// NewImpactAction builds the playback descriptor for a resolved player
// attack.
func NewImpactAction(res poker.DamageResult) Action {
	return Action{
		Type:       ActionImpact,
		TimingHint: 0.6,
		Target:     TargetBoss,
		Amount:     res.FinalDamage,
		Critical:   res.IsCritical,
		Category:   res.Category.String(),
		Banned:     res.Banned,
	}
}

func damageAction(target TargetSide, amount int) Action {
	return Action{Type: ActionDamage, TimingHint: 0.4, Target: target, Amount: amount}
}

func healAction(target TargetSide, amount int) Action {
	return Action{Type: ActionHeal, TimingHint: 0.4, Target: target, Amount: amount}
}

func conditionAction(target TargetSide, name game.ConditionName) Action {
	return Action{Type: ActionConditionApplied, TimingHint: 0.5, Target: target, Condition: name}
}
