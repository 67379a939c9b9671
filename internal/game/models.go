package game

import (
	"gorm.io/gorm"
)

// ConditionName identifies a timed status effect.
type ConditionName string

const (
	ConditionNone         ConditionName = ""
	ConditionBleeding     ConditionName = "bleeding"
	ConditionHeavyBleed   ConditionName = "heavy_bleeding"
	ConditionPoisoning    ConditionName = "poisoning"
	ConditionDebilitating ConditionName = "debilitating"
	ConditionParalyzing   ConditionName = "paralyzing"
	ConditionRegenerating ConditionName = "regenerating"
	ConditionImmune       ConditionName = "immune"
	ConditionAvoiding     ConditionName = "avoiding"
)

// PermanentDuration marks a condition as permanent/passive: it is never
// decremented by end-of-turn ticks and survives a full condition clear.
const PermanentDuration = 999

// Condition is a per-combatant timed effect. Amount carries the optional
// payload (heal per turn for regeneration, proc chance for avoidance).
type Condition struct {
	Name        ConditionName `json:"name"`
	Duration    int           `json:"duration_in_turns"`
	Elapsed     int           `json:"elapsed_turns"`
	Description string        `json:"description,omitempty"`
	Amount      float64       `json:"amount,omitempty"`
}

// Permanent reports whether the condition never expires on its own.
func (c Condition) Permanent() bool { return c.Duration >= PermanentDuration }

// ConditionSet is an ordered, name-unique collection of conditions. It
// serializes as the ordered list of condition records so an external save
// system can snapshot and restore it without invoking any game logic.
type ConditionSet []Condition

// Get returns a pointer to the named condition, or nil when absent.
func (s ConditionSet) Get(name ConditionName) *Condition {
	for i := range s {
		if s[i].Name == name {
			return &s[i]
		}
	}
	return nil
}

// Has reports whether the named condition is active.
func (s ConditionSet) Has(name ConditionName) bool { return s.Get(name) != nil }

// Add appends the condition, keeping name uniqueness. Adding an already
// present name is a no-op; mutations with game semantics live in the engine.
func (s *ConditionSet) Add(c Condition) bool {
	if s.Has(c.Name) {
		return false
	}
	*s = append(*s, c)
	return true
}

// Remove deletes the named condition preserving the order of the rest.
func (s *ConditionSet) Remove(name ConditionName) bool {
	for i := range *s {
		if (*s)[i].Name == name {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the active condition names in insertion order.
func (s ConditionSet) Names() []ConditionName {
	out := make([]ConditionName, 0, len(s))
	for _, c := range s {
		out = append(out, c.Name)
	}
	return out
}

// Combatant is one side of an encounter. BaseMaxHP is the undebuffed HP
// ceiling; MaxHP may be temporarily lowered by debuffs. 0 <= HP <= MaxHP
// always holds.
type Combatant struct {
	Name       string       `json:"name"`
	HP         int          `json:"hp"`
	MaxHP      int          `json:"max_hp"`
	BaseMaxHP  int          `json:"base_max_hp"`
	Attack     int          `json:"attack"`
	Conditions ConditionSet `json:"conditions"`
}

// NewCombatant creates a combatant at full health.
func NewCombatant(name string, hp, attack int) Combatant {
	return Combatant{Name: name, HP: hp, MaxHP: hp, BaseMaxHP: hp, Attack: attack}
}

// ApplyDamage reduces HP flooring at zero and returns the amount actually
// removed.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > c.HP {
		amount = c.HP
	}
	c.HP -= amount
	return amount
}

// Heal raises HP capping at MaxHP and returns the amount actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if c.HP+amount > c.MaxHP {
		amount = c.MaxHP - c.HP
	}
	c.HP += amount
	return amount
}

// SetMaxHP moves the temporary HP ceiling and clamps HP when it shrinks.
func (c *Combatant) SetMaxHP(max int) {
	if max < 0 {
		max = 0
	}
	c.MaxHP = max
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// RaiseCeiling permanently raises both ceilings (used by stage unlocks).
func (c *Combatant) RaiseCeiling(max int) {
	if max > c.BaseMaxHP {
		c.BaseMaxHP = max
	}
	if max > c.MaxHP {
		c.MaxHP = max
	}
}

// Defeated reports whether the combatant is out of hit points.
func (c *Combatant) Defeated() bool { return c.HP <= 0 }

// Encounter status values.
const (
	StatusInProgress = "in_progress"
	StatusPlayerWon  = "player_won"
	StatusPlayerLost = "player_lost"
	StatusAbandoned  = "abandoned"
)

// Encounter is one persisted run against a stage boss. The combatants, the
// hand and the last action log are stored as JSON columns so a snapshot can
// be taken and restored mid-encounter.
type Encounter struct {
	gorm.Model
	EncounterUUID string `json:"encounter_uuid" gorm:"uniqueIndex"`
	StageName     string `json:"stage_name"`
	Status        string `json:"status"`
	Turn          int    `json:"turn"`
	Seed          int64  `json:"-"`

	Player Combatant `json:"player" gorm:"serializer:json"`
	Boss   Combatant `json:"boss" gorm:"serializer:json"`
	Hand   []Card    `json:"hand" gorm:"serializer:json"`

	LastTurnLog string `json:"last_turn_log" gorm:"size:4096"`
}
