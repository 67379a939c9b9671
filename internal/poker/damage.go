package poker

import (
	"math"
	"math/rand"
	"sort"

	"pokerquest/internal/game"
)

const (
	critChancePerAce   = 0.1
	critMultiplier     = 1.25
	weakenedMultiplier = 0.8
)

// DamageResult is the outcome of converting a hand into a damage number.
// When Banned is set the hand matched the encounter's banned category: the
// damage is zeroed but the category is still reported so the caller can
// display it.
type DamageResult struct {
	Category    HandCategory `json:"category"`
	Banned      bool         `json:"banned"`
	BaseDamage  int          `json:"base_damage"`
	IsCritical  bool         `json:"is_critical"`
	Multiplier  float64      `json:"multiplier"`
	FinalDamage int          `json:"final_damage"`
	Evaluation  Evaluation   `json:"evaluation"`
}

// Calculate evaluates the hand and converts it into damage. It is pure
// given the injected random source: base damage is the category bonus plus
// the contributing card values (HighCard instead sums only the two highest
// raw values of the whole hand), a critical roll scales with the aces and
// wildcards among the contributing cards, and an active weakened debuff
// shaves the total. Multipliers compose multiplicatively and the result is
// floored to an integer.
func Calculate(rng *rand.Rand, cards []game.Card, debuffActive bool, banned *HandCategory) DamageResult {
	ev := Evaluate(cards)

	if banned != nil && *banned == ev.Category {
		return DamageResult{Category: ev.Category, Banned: true, Multiplier: 1, Evaluation: ev}
	}

	base := 0
	if ev.Category == HighCard {
		base = topTwoValues(cards)
	} else {
		base = ev.Bonus
		for _, i := range ev.Indices {
			base += cards[i].Value()
		}
	}

	critChance := critChancePerAce * float64(critSources(cards, ev.Indices))
	isCrit := critChance > 0 && rng.Float64() < critChance

	mult := 1.0
	if isCrit {
		mult *= critMultiplier
	}
	if debuffActive {
		mult *= weakenedMultiplier
	}

	return DamageResult{
		Category:    ev.Category,
		BaseDamage:  base,
		IsCritical:  isCrit,
		Multiplier:  mult,
		FinalDamage: int(math.Floor(float64(base) * mult)),
		Evaluation:  ev,
	}
}

// critSources counts aces and wildcards among the contributing cards.
func critSources(cards []game.Card, indices []int) int {
	n := 0
	for _, i := range indices {
		if cards[i].Wildcard || cards[i].Rank == game.Ace {
			n++
		}
	}
	return n
}

// topTwoValues sums the two highest raw card values in the entire hand.
func topTwoValues(cards []game.Card) int {
	values := make([]int, 0, len(cards))
	for _, c := range cards {
		values = append(values, c.Value())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	sum := 0
	for i := 0; i < len(values) && i < 2; i++ {
		sum += values[i]
	}
	return sum
}
