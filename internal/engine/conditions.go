package engine

import (
	"math/rand"

	"pokerquest/internal/game"
)

// conditionSpec holds the fixed duration, tick damage and description for a
// named condition.
type conditionSpec struct {
	duration    int
	tickDamage  int
	description string
}

var conditionSpecs = map[game.ConditionName]conditionSpec{
	game.ConditionBleeding:     {duration: 6, tickDamage: 5, description: "Loses blood at the end of every turn."},
	game.ConditionHeavyBleed:   {duration: 4, tickDamage: 12, description: "Bleeds heavily at the end of every turn."},
	game.ConditionPoisoning:    {duration: 5, tickDamage: 8, description: "Poison damage at the end of every turn."},
	game.ConditionDebilitating: {duration: 4, description: "Weakened: max HP reduced and damage dealt lowered."},
	game.ConditionParalyzing:   {duration: 2, description: "Cannot act while paralyzed."},
	game.ConditionRegenerating: {duration: game.PermanentDuration, description: "Recovers HP at the end of every turn."},
	game.ConditionImmune:       {duration: game.PermanentDuration, description: "Immune to negative conditions."},
	game.ConditionAvoiding:     {duration: game.PermanentDuration, description: "Chance to fully evade incoming attacks."},
}

// negativeConditions is the set blocked by Immune.
var negativeConditions = map[game.ConditionName]bool{
	game.ConditionBleeding:     true,
	game.ConditionHeavyBleed:   true,
	game.ConditionPoisoning:    true,
	game.ConditionDebilitating: true,
	game.ConditionParalyzing:   true,
}

// debilitateMaxHPFactor is the fraction of BaseMaxHP kept while the
// debilitating condition is active (a 20% reduction).
const debilitateMaxHPFactor = 0.8

// poisonEscalateChance is the chance a repeat poisoning escalates into the
// debilitating condition instead of being a no-op.
const poisonEscalateChance = 0.5

// NewCondition builds a condition from the fixed spec table.
func NewCondition(name game.ConditionName) game.Condition {
	spec := conditionSpecs[name]
	return game.Condition{Name: name, Duration: spec.duration, Description: spec.description}
}

// NewConditionWithAmount builds a condition carrying a payload amount
// (regeneration heal, avoidance chance).
func NewConditionWithAmount(name game.ConditionName, amount float64) game.Condition {
	c := NewCondition(name)
	c.Amount = amount
	return c
}

// ApplyCondition attempts to add cond to the combatant, honoring the
// escalation and suppression rules. It returns the condition name that
// actually landed and whether any state changed; rejected applications
// return ("", false) without mutating anything.
func ApplyCondition(rng *rand.Rand, c *game.Combatant, cond game.Condition) (game.ConditionName, bool) {
	if negativeConditions[cond.Name] && c.Conditions.Has(game.ConditionImmune) {
		return game.ConditionNone, false
	}

	switch cond.Name {
	case game.ConditionBleeding:
		if c.Conditions.Has(game.ConditionHeavyBleed) {
			return game.ConditionNone, false
		}
		if c.Conditions.Has(game.ConditionBleeding) {
			c.Conditions.Remove(game.ConditionBleeding)
			c.Conditions.Add(NewCondition(game.ConditionHeavyBleed))
			return game.ConditionHeavyBleed, true
		}

	case game.ConditionPoisoning:
		if c.Conditions.Has(game.ConditionPoisoning) {
			if rng.Float64() < poisonEscalateChance {
				c.Conditions.Remove(game.ConditionPoisoning)
				applyDebilitating(c)
				return game.ConditionDebilitating, true
			}
			// Poison stays as-is: not refreshed.
			return game.ConditionNone, false
		}

	case game.ConditionParalyzing:
		if c.Conditions.Has(game.ConditionParalyzing) {
			return game.ConditionNone, false
		}

	case game.ConditionDebilitating:
		if c.Conditions.Has(game.ConditionDebilitating) {
			return game.ConditionNone, false
		}
		applyDebilitating(c)
		return game.ConditionDebilitating, true
	}

	if existing := c.Conditions.Get(cond.Name); existing != nil {
		if existing.Permanent() {
			// Permanent conditions may refresh their payload.
			existing.Amount = cond.Amount
			existing.Description = cond.Description
			return cond.Name, true
		}
		return game.ConditionNone, false
	}

	c.Conditions.Add(cond)
	return cond.Name, true
}

// applyDebilitating inserts the condition and couples max HP to it.
func applyDebilitating(c *game.Combatant) {
	c.Conditions.Add(NewCondition(game.ConditionDebilitating))
	c.SetMaxHP(int(float64(c.BaseMaxHP) * debilitateMaxHPFactor))
}

// RemoveCondition deletes the named condition and undoes any stat coupling.
func RemoveCondition(c *game.Combatant, name game.ConditionName) bool {
	if !c.Conditions.Remove(name) {
		return false
	}
	if name == game.ConditionDebilitating {
		c.SetMaxHP(c.BaseMaxHP)
	}
	return true
}

// TickEffectKind distinguishes end-of-turn damage from healing.
type TickEffectKind string

const (
	TickDamage TickEffectKind = "damage"
	TickHeal   TickEffectKind = "heal"
)

// TickEffect is one damage-or-heal emission produced by an end-of-turn
// tick. Amounts are not yet folded into HP; the turn engine does that.
type TickEffect struct {
	Kind   TickEffectKind
	Source game.ConditionName
	Amount int
}

// TickConditions advances every active condition by one turn: emit the
// DoT/regen effects in insertion order, increment elapsed counters, then
// remove everything that expired. Removals happen after the whole pass so a
// condition on its final turn still applies its last tick.
func TickConditions(c *game.Combatant) []TickEffect {
	effects := make([]TickEffect, 0, len(c.Conditions))
	var expired []game.ConditionName

	for i := range c.Conditions {
		cond := &c.Conditions[i]
		switch cond.Name {
		case game.ConditionBleeding, game.ConditionHeavyBleed, game.ConditionPoisoning:
			effects = append(effects, TickEffect{Kind: TickDamage, Source: cond.Name, Amount: conditionSpecs[cond.Name].tickDamage})
		case game.ConditionRegenerating:
			if heal := int(cond.Amount); heal > 0 {
				effects = append(effects, TickEffect{Kind: TickHeal, Source: cond.Name, Amount: heal})
			}
		}
		if !cond.Permanent() {
			cond.Elapsed++
			if cond.Elapsed >= cond.Duration {
				expired = append(expired, cond.Name)
			}
		}
	}

	for _, name := range expired {
		RemoveCondition(c, name)
	}
	return effects
}

// ClearConditions removes every non-permanent condition (stage transition).
func ClearConditions(c *game.Combatant) {
	for _, name := range c.Conditions.Names() {
		if cond := c.Conditions.Get(name); cond != nil && !cond.Permanent() {
			RemoveCondition(c, name)
		}
	}
}
