package config

import (
	"os"
	"path/filepath"
	"testing"

	"pokerquest/internal/game"
	"pokerquest/internal/poker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"wildcard_chance": 0.1,
		"hand_size": 7,
		"max_attack_cards": 4,
		"stage_list": [
			{
				"name": "sunken-archive",
				"boss_name": "archivist",
				"boss_hit_points": 300,
				"boss_attack": 14,
				"player_hit_points": 150,
				"player_attack": 10,
				"damage_reduction": 0.25,
				"banned_category": "flush",
				"attack_growth_factor": 2,
				"regen_threshold": 0.3,
				"regen_amount": 15,
				"boss_rules": [
					{"name": "tidal-slam", "cadence": 2, "attack_multiplier": 2.0,
					 "on_hit": [{"condition": "paralyzing", "probability": 0.2}]}
				],
				"player_on_hit": [{"condition": "bleeding", "probability": 0.6}],
				"player_conditions": [{"name": "avoiding", "amount": 0.15}]
			}
		]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 0.1, cfg.WildcardChance)
	assert.Equal(t, 7, cfg.HandSize)
	assert.Equal(t, 4, cfg.MaxAttackCards)

	stage, ok := cfg.StageByName("sunken-archive")
	require.True(t, ok)
	assert.Equal(t, "archivist", stage.BossName)
	assert.Equal(t, 300, stage.BossHitPoints)
	assert.Equal(t, 0.25, stage.Rules.DamageReduction)
	require.NotNil(t, stage.Rules.BannedCategory)
	assert.Equal(t, poker.Flush, *stage.Rules.BannedCategory)
	assert.Equal(t, 2.0, stage.Rules.AttackGrowthFactor)
	assert.Equal(t, 0.3, stage.Rules.RegenThreshold)
	assert.Equal(t, 15, stage.Rules.RegenAmount)

	require.Len(t, stage.Rules.BossRules, 1)
	assert.Equal(t, 2, stage.Rules.BossRules[0].Cadence)
	require.Len(t, stage.Rules.PlayerOnHit, 1)
	assert.Equal(t, "bleeding", stage.Rules.PlayerOnHit[0].Condition)

	require.Len(t, stage.PlayerConditions, 1)
	assert.Equal(t, game.ConditionAvoiding, stage.PlayerConditions[0].Name)
	assert.Equal(t, 0.15, stage.PlayerConditions[0].Amount)
	assert.True(t, stage.PlayerConditions[0].Permanent())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"stage_list": [
			{"name": "rusty-gate", "boss_hit_points": 100, "player_hit_points": 100}
		]
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.08, cfg.WildcardChance)
	assert.Equal(t, 8, cfg.HandSize)
	assert.Equal(t, 5, cfg.MaxAttackCards)
	assert.Empty(t, cfg.ServerAddress)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing file", "", "failed to read"},
		{"invalid json", `{not json`, "failed to parse"},
		{"empty stage list", `{"stage_list": []}`, "stage_list is empty"},
		{
			"stage without name",
			`{"stage_list": [{"boss_hit_points": 100, "player_hit_points": 100}]}`,
			"missing 'name'",
		},
		{
			"non-positive hit points",
			`{"stage_list": [{"name": "x", "boss_hit_points": 0, "player_hit_points": 100}]}`,
			"positive hit points",
		},
		{
			"unknown banned category",
			`{"stage_list": [{"name": "x", "boss_hit_points": 1, "player_hit_points": 1, "banned_category": "straight_draw"}]}`,
			"unknown banned_category",
		},
		{
			"unknown player condition",
			`{"stage_list": [{"name": "x", "boss_hit_points": 1, "player_hit_points": 1, "player_conditions": [{"name": "blessed"}]}]}`,
			"unknown player condition",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.json")
			if tt.body != "" {
				path = writeConfig(t, tt.body)
			}
			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
