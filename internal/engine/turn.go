package engine

import (
	"math"
	"math/rand"

	"pokerquest/internal/game"
	"pokerquest/internal/poker"
)

// Status is the encounter outcome visible after any HP-mutating step.
type Status string

const (
	Ongoing    Status = "ongoing"
	PlayerWon  Status = "player_won"
	PlayerLost Status = "player_lost"
)

// BossImpact describes a resolved (not yet applied) boss attack.
type BossImpact struct {
	Damage int
	Rule   BossRule
	Acts   bool
}

// Engine sequences a single combat turn: player action, boss reaction and
// end-of-turn condition resolution. Resolve* methods compute impacts
// without mutating HP; the matching Apply* methods commit them, so a caller
// can interleave animation between the two. The engine is synchronous and
// not reentrant; callers resolve one turn fully before starting the next.
type Engine struct {
	rng    *rand.Rand
	rules  EncounterRules
	player *game.Combatant
	boss   *game.Combatant

	turn      int
	bossActed bool
}

// New creates an engine for one combatant pair with injected rules and
// random source.
func New(rng *rand.Rand, rules EncounterRules, player, boss *game.Combatant) *Engine {
	return &Engine{rng: rng, rules: rules, player: player, boss: boss}
}

// ResumeAt restores the internal turn counter when re-hydrating a
// persisted encounter.
func (e *Engine) ResumeAt(turn int) { e.turn = turn }

// Turn returns the number of completed boss reactions.
func (e *Engine) Turn() int { return e.turn }

// PlayerParalyzed reports whether the player currently cannot act; the
// caller is expected to withhold the attack rather than submit one.
func (e *Engine) PlayerParalyzed() bool {
	return e.player.Conditions.Has(game.ConditionParalyzing)
}

// ResolvePlayerAttack scores the selected cards into an impact descriptor
// without touching HP. An empty selection yields a zero-damage result.
func (e *Engine) ResolvePlayerAttack(selected []game.Card) poker.DamageResult {
	debuffed := e.player.Conditions.Has(game.ConditionDebilitating)
	return poker.Calculate(e.rng, selected, debuffed, e.rules.BannedCategory)
}

// ApplyPlayerAttack commits damage to the boss, honoring the stage's
// permanent damage reduction, and rolls the player's on-hit conditions.
func (e *Engine) ApplyPlayerAttack(res poker.DamageResult) []Action {
	actions := []Action{}
	dmg := int(math.Floor(float64(res.FinalDamage) * (1 - e.rules.DamageReduction)))
	dealt := e.boss.ApplyDamage(dmg)
	actions = append(actions, damageAction(TargetBoss, dealt))

	if dealt > 0 && !e.boss.Defeated() {
		if name, ok := e.rollOnHit(e.boss, e.rules.PlayerOnHit); ok {
			actions = append(actions, conditionAction(TargetBoss, name))
		}
	}
	return actions
}

// ResolveBossAttack advances the turn counter and consults the encounter
// rules to decide whether and how hard the boss strikes back. It never
// mutates HP.
func (e *Engine) ResolveBossAttack() BossImpact {
	e.turn++
	e.bossActed = false

	if len(e.rules.BossRules) == 0 || e.boss.Defeated() {
		return BossImpact{}
	}
	if e.boss.Conditions.Has(game.ConditionParalyzing) {
		return BossImpact{}
	}

	rule := e.rules.BossRules[0]
	if len(e.rules.BossRules) > 1 {
		rule = e.rules.BossRules[e.rng.Intn(len(e.rules.BossRules))]
	}
	rule = rule.normalized()

	if e.turn%rule.Cadence != 0 {
		return BossImpact{Rule: rule}
	}

	e.bossActed = true
	dmg := int(math.Floor(float64(e.boss.Attack) * rule.AttackMultiplier))
	return BossImpact{Damage: dmg, Rule: rule, Acts: true}
}

// ApplyBossAttack commits a resolved boss attack: the defender's avoidance
// is rolled first (full negation), then damage lands and exactly one on-hit
// condition band is attempted.
func (e *Engine) ApplyBossAttack(imp BossImpact) []Action {
	if !imp.Acts {
		return []Action{{Type: ActionSkipped, Target: TargetBoss}}
	}

	if avoid := e.player.Conditions.Get(game.ConditionAvoiding); avoid != nil {
		if e.rng.Float64() < avoid.Amount {
			return []Action{{Type: ActionAvoided, TimingHint: 0.5, Target: TargetPlayer}}
		}
	}

	actions := []Action{}
	dealt := e.player.ApplyDamage(imp.Damage)
	actions = append(actions, damageAction(TargetPlayer, dealt))

	if !e.player.Defeated() {
		if name, ok := e.rollOnHit(e.player, imp.Rule.OnHit); ok {
			actions = append(actions, conditionAction(TargetPlayer, name))
		}
	}
	return actions
}

// rollOnHit draws one uniform roll against cumulative probability bands and
// attempts at most one condition application.
func (e *Engine) rollOnHit(target *game.Combatant, table []ConditionChance) (game.ConditionName, bool) {
	if len(table) == 0 {
		return game.ConditionNone, false
	}
	roll := e.rng.Float64()
	cum := 0.0
	for _, band := range table {
		cum += band.Probability
		if roll < cum {
			name, _ := parseConditionName(band.Condition)
			if name == game.ConditionNone {
				return game.ConditionNone, false
			}
			return ApplyCondition(e.rng, target, NewCondition(name))
		}
	}
	return game.ConditionNone, false
}

// ProcessEndTurn ticks both combatants' conditions, folds the resulting
// heal/damage effects into HP and applies the stage's end-of-turn stat
// growth rules.
func (e *Engine) ProcessEndTurn() []Action {
	actions := []Action{}
	actions = append(actions, e.foldTicks(TargetPlayer, e.player)...)
	actions = append(actions, e.foldTicks(TargetBoss, e.boss)...)

	if e.bossActed && e.rules.AttackGrowthFactor > 0 && !e.boss.Defeated() {
		e.boss.Attack = int(float64(e.boss.Attack) * e.rules.AttackGrowthFactor)
		actions = append(actions, Action{Type: ActionStatGrowth, Target: TargetBoss, Amount: e.boss.Attack})
	}

	if e.rules.RegenThreshold > 0 && !e.boss.Defeated() &&
		float64(e.boss.HP) < e.rules.RegenThreshold*float64(e.boss.MaxHP) &&
		!e.boss.Conditions.Has(game.ConditionRegenerating) {
		if name, ok := ApplyCondition(e.rng, e.boss, NewConditionWithAmount(game.ConditionRegenerating, float64(e.rules.RegenAmount))); ok {
			actions = append(actions, conditionAction(TargetBoss, name))
		}
	}
	return actions
}

func (e *Engine) foldTicks(side TargetSide, c *game.Combatant) []Action {
	actions := []Action{}
	for _, eff := range TickConditions(c) {
		switch eff.Kind {
		case TickDamage:
			dealt := c.ApplyDamage(eff.Amount)
			a := damageAction(side, dealt)
			a.Condition = eff.Source
			actions = append(actions, a)
		case TickHeal:
			healed := c.Heal(eff.Amount)
			a := healAction(side, healed)
			a.Condition = eff.Source
			actions = append(actions, a)
		}
	}
	return actions
}

// CheckStatus may be called after every HP-mutating step so a mid-turn kill
// stops further processing. A turn that fells both sides counts as a win.
func (e *Engine) CheckStatus() Status {
	if e.boss.Defeated() {
		return PlayerWon
	}
	if e.player.Defeated() {
		return PlayerLost
	}
	return Ongoing
}

func parseConditionName(s string) (game.ConditionName, bool) {
	switch game.ConditionName(s) {
	case game.ConditionBleeding, game.ConditionHeavyBleed, game.ConditionPoisoning,
		game.ConditionDebilitating, game.ConditionParalyzing, game.ConditionRegenerating,
		game.ConditionImmune, game.ConditionAvoiding:
		return game.ConditionName(s), true
	}
	return game.ConditionNone, false
}
