package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValue(t *testing.T) {
	assert.Equal(t, 7, Card{Rank: 7, Suit: Clubs}.Value())
	assert.Equal(t, 14, Card{Rank: Ace, Suit: Spades}.Value())
	assert.Equal(t, 14, Card{Wildcard: true}.Value())
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "7 of clubs", Card{Rank: 7, Suit: Clubs}.String())
	assert.Equal(t, "10 of hearts", Card{Rank: 10, Suit: Hearts}.String())
	assert.Equal(t, "A of spades", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "wildcard", Card{Wildcard: true}.String())
}

func TestConditionSetOrderAndUniqueness(t *testing.T) {
	var set ConditionSet
	require.True(t, set.Add(Condition{Name: ConditionBleeding, Duration: 6}))
	require.True(t, set.Add(Condition{Name: ConditionPoisoning, Duration: 5}))
	assert.False(t, set.Add(Condition{Name: ConditionBleeding, Duration: 6}))

	assert.Equal(t, []ConditionName{ConditionBleeding, ConditionPoisoning}, set.Names())

	require.True(t, set.Remove(ConditionBleeding))
	assert.False(t, set.Remove(ConditionBleeding))
	assert.Equal(t, []ConditionName{ConditionPoisoning}, set.Names())
	assert.Nil(t, set.Get(ConditionBleeding))
}

func TestCombatantDamageAndHealClamp(t *testing.T) {
	c := NewCombatant("hero", 100, 10)

	assert.Equal(t, 30, c.ApplyDamage(30))
	assert.Equal(t, 70, c.HP)

	// Overkill reports only what was actually removed.
	assert.Equal(t, 70, c.ApplyDamage(500))
	assert.Equal(t, 0, c.HP)
	assert.True(t, c.Defeated())

	assert.Equal(t, 0, c.ApplyDamage(-5))

	c.HP = 90
	assert.Equal(t, 10, c.Heal(50))
	assert.Equal(t, 100, c.HP)
	assert.Equal(t, 0, c.Heal(-5))
}

func TestCombatantMaxHPClamp(t *testing.T) {
	c := NewCombatant("hero", 200, 10)

	c.SetMaxHP(160)
	assert.Equal(t, 160, c.MaxHP)
	assert.Equal(t, 160, c.HP)
	assert.Equal(t, 200, c.BaseMaxHP)

	c.SetMaxHP(200)
	assert.Equal(t, 160, c.HP) // restoring the ceiling does not heal

	c.RaiseCeiling(250)
	assert.Equal(t, 250, c.BaseMaxHP)
	assert.Equal(t, 250, c.MaxHP)
}

func TestCombatantJSONRoundTrip(t *testing.T) {
	c := NewCombatant("hero", 200, 12)
	c.Conditions.Add(Condition{Name: ConditionAvoiding, Duration: PermanentDuration, Amount: 0.2, Description: "evades"})
	c.Conditions.Add(Condition{Name: ConditionBleeding, Duration: 6, Elapsed: 2, Description: "bleeds"})
	c.ApplyDamage(35)

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var restored Combatant
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, c, restored)
	assert.Equal(t, []ConditionName{ConditionAvoiding, ConditionBleeding}, restored.Conditions.Names())
}

func TestEncounterJSONHidesSeed(t *testing.T) {
	enc := Encounter{
		EncounterUUID: "u-1",
		StageName:     "rusty-gate",
		Status:        StatusInProgress,
		Turn:          3,
		Seed:          12345,
		Player:        NewCombatant("hero", 100, 10),
		Boss:          NewCombatant("boss", 300, 14),
		Hand:          []Card{{ID: 1, Rank: 7, Suit: Clubs}, {ID: 2, Wildcard: true}},
	}

	raw, err := json.Marshal(enc)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "12345")

	var restored Encounter
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.Equal(t, enc.Hand, restored.Hand)
	assert.Equal(t, enc.Player, restored.Player)
	assert.Zero(t, restored.Seed)
}
