package config

import (
	"encoding/json"
	"fmt"
	"os"

	"pokerquest/internal/engine"
	"pokerquest/internal/game"
	"pokerquest/internal/poker"
)

type conditionEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type stageEntry struct {
	Name               string                   `json:"name"`
	BossName           string                   `json:"boss_name"`
	BossHitPoints      int                      `json:"boss_hit_points"`
	BossAttack         int                      `json:"boss_attack"`
	PlayerHitPoints    int                      `json:"player_hit_points"`
	PlayerAttack       int                      `json:"player_attack"`
	DamageReduction    float64                  `json:"damage_reduction"`
	BannedCategory     string                   `json:"banned_category"`
	AttackGrowthFactor float64                  `json:"attack_growth_factor"`
	RegenThreshold     float64                  `json:"regen_threshold"`
	RegenAmount        int                      `json:"regen_amount"`
	BossRules          []engine.BossRule        `json:"boss_rules"`
	PlayerOnHit        []engine.ConditionChance `json:"player_on_hit"`
	PlayerConditions   []conditionEntry         `json:"player_conditions"`
}

type rawConfig struct {
	StageList []stageEntry `json:"stage_list"`
	Server    *struct {
		Address string `json:"address"`
	} `json:"server"`
	WildcardChance float64 `json:"wildcard_chance"`
	HandSize       int     `json:"hand_size"`
	MaxAttackCards int     `json:"max_attack_cards"`
}

// Stage is one playable encounter definition: base stats for both sides,
// the rule set the turn engine consumes and any permanent conditions the
// player starts with (skill unlocks).
type Stage struct {
	Name             string
	BossName         string
	BossHitPoints    int
	BossAttack       int
	PlayerHitPoints  int
	PlayerAttack     int
	Rules            engine.EncounterRules
	PlayerConditions []game.Condition
}

// LoadedConfig contains the stage table and server tuning.
type LoadedConfig struct {
	Stages         []Stage
	ServerAddress  string
	WildcardChance float64
	HandSize       int
	MaxAttackCards int
}

// StageByName looks a stage up by its configured name.
func (c *LoadedConfig) StageByName(name string) (*Stage, bool) {
	for i := range c.Stages {
		if c.Stages[i].Name == name {
			return &c.Stages[i], true
		}
	}
	return nil, false
}

// LoadConfig reads the configuration file at path. It requires a non-empty
// `stage_list` and validates every referenced hand category and condition
// name.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if len(rc.StageList) == 0 {
		return nil, fmt.Errorf("config file %s: stage_list is empty (provide a 'stage_list' array)", path)
	}

	out := &LoadedConfig{
		ServerAddress:  "",
		WildcardChance: rc.WildcardChance,
		HandSize:       rc.HandSize,
		MaxAttackCards: rc.MaxAttackCards,
	}
	if rc.Server != nil {
		out.ServerAddress = rc.Server.Address
	}
	if out.WildcardChance <= 0 {
		out.WildcardChance = 0.08
	}
	if out.HandSize <= 0 {
		out.HandSize = 8
	}
	if out.MaxAttackCards <= 0 {
		out.MaxAttackCards = 5
	}

	for _, s := range rc.StageList {
		if s.Name == "" {
			return nil, fmt.Errorf("config file %s: stage entry missing 'name'", path)
		}
		if s.BossHitPoints <= 0 || s.PlayerHitPoints <= 0 {
			return nil, fmt.Errorf("config file %s: stage %s needs positive hit points", path, s.Name)
		}

		rules := engine.EncounterRules{
			StageName:          s.Name,
			DamageReduction:    s.DamageReduction,
			BossRules:          s.BossRules,
			PlayerOnHit:        s.PlayerOnHit,
			AttackGrowthFactor: s.AttackGrowthFactor,
			RegenThreshold:     s.RegenThreshold,
			RegenAmount:        s.RegenAmount,
		}
		if s.BannedCategory != "" {
			cat, ok := poker.ParseCategory(s.BannedCategory)
			if !ok {
				return nil, fmt.Errorf("config file %s: stage %s: unknown banned_category %q", path, s.Name, s.BannedCategory)
			}
			rules.BannedCategory = &cat
		}

		stage := Stage{
			Name:            s.Name,
			BossName:        s.BossName,
			BossHitPoints:   s.BossHitPoints,
			BossAttack:      s.BossAttack,
			PlayerHitPoints: s.PlayerHitPoints,
			PlayerAttack:    s.PlayerAttack,
			Rules:           rules,
		}
		for _, ce := range s.PlayerConditions {
			cond := engine.NewConditionWithAmount(game.ConditionName(ce.Name), ce.Amount)
			if cond.Duration == 0 {
				return nil, fmt.Errorf("config file %s: stage %s: unknown player condition %q", path, s.Name, ce.Name)
			}
			stage.PlayerConditions = append(stage.PlayerConditions, cond)
		}
		out.Stages = append(out.Stages, stage)
	}
	return out, nil
}
