package poker

import (
	"sort"

	"pokerquest/internal/game"
)

// HandCategory is the closed set of scorable poker hands, ordered by
// strength.
type HandCategory int

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[HandCategory]string{
	HighCard:      "high_card",
	OnePair:       "one_pair",
	TwoPair:       "two_pair",
	ThreeOfAKind:  "three_of_a_kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full_house",
	FourOfAKind:   "four_of_a_kind",
	StraightFlush: "straight_flush",
	RoyalFlush:    "royal_flush",
}

func (c HandCategory) String() string { return categoryNames[c] }

// ParseCategory maps a config string back to a category.
func ParseCategory(s string) (HandCategory, bool) {
	for c, name := range categoryNames {
		if name == s {
			return c, true
		}
	}
	return HighCard, false
}

var categoryBonus = map[HandCategory]int{
	HighCard:      0,
	OnePair:       10,
	TwoPair:       20,
	ThreeOfAKind:  50,
	Straight:      75,
	Flush:         100,
	FullHouse:     125,
	FourOfAKind:   150,
	StraightFlush: 175,
	RoyalFlush:    300,
}

// Bonus returns the flat damage bonus awarded for the category.
func (c HandCategory) Bonus() int { return categoryBonus[c] }

// Evaluation is the result of scoring a hand. Indices always point into the
// original hand (wildcards included) and list exactly the cards that make
// the category.
type Evaluation struct {
	Category HandCategory `json:"category"`
	Bonus    int          `json:"bonus_score"`
	Indices  []int        `json:"contributing_indices"`
}

// maxWildcardSearch bounds the substitution search: at most two wildcards
// are enumerated exhaustively (13 ranks x 4 suits each, <= 2704 candidate
// evaluations). Further wildcards are pinned to the Ace of Spades first.
const maxWildcardSearch = 2

// Evaluate scores a hand of 1-5 cards and returns the strongest achievable
// category. With wildcards present it runs a brute-force best-response
// search over every concrete (rank, suit) substitution and keeps the
// maximum-bonus result; ties keep the first candidate found. The input is
// never mutated.
func Evaluate(cards []game.Card) Evaluation {
	if len(cards) == 0 {
		return Evaluation{Category: HighCard, Indices: []int{}}
	}

	var wilds []int
	for i, c := range cards {
		if c.Wildcard {
			wilds = append(wilds, i)
		}
	}
	if len(wilds) == 0 {
		return evaluateConcrete(cards)
	}

	work := make([]game.Card, len(cards))
	copy(work, cards)
	for _, i := range wilds[minInt(len(wilds), maxWildcardSearch):] {
		work[i] = game.Card{ID: cards[i].ID, Suit: game.Spades, Rank: game.Ace}
	}
	search := wilds[:minInt(len(wilds), maxWildcardSearch)]

	best := Evaluation{}
	first := true
	var enumerate func(depth int)
	enumerate = func(depth int) {
		if depth == len(search) {
			ev := evaluateConcrete(work)
			if first || ev.Bonus > best.Bonus {
				best = ev
				first = false
			}
			return
		}
		pos := search[depth]
		for r := game.MinRank; r <= game.MaxRank; r++ {
			for _, s := range game.Suits {
				work[pos] = game.Card{ID: cards[pos].ID, Suit: s, Rank: r}
				enumerate(depth + 1)
			}
		}
		work[pos] = cards[pos]
	}
	enumerate(0)
	return best
}

// evaluateConcrete runs category detection strongest-first on a hand with no
// wildcards.
func evaluateConcrete(cards []game.Card) Evaluation {
	counts := rankCounts(cards)

	if idx := royalFlushIndices(cards); idx != nil {
		return Evaluation{Category: RoyalFlush, Bonus: RoyalFlush.Bonus(), Indices: idx}
	}
	if flushIndices(cards) != nil && straightIndices(cards) != nil {
		return Evaluation{Category: StraightFlush, Bonus: StraightFlush.Bonus(), Indices: allIndices(cards)}
	}
	if idx := ofAKindIndices(counts, 4); idx != nil {
		return Evaluation{Category: FourOfAKind, Bonus: FourOfAKind.Bonus(), Indices: idx}
	}
	if idx := fullHouseIndices(counts); idx != nil {
		return Evaluation{Category: FullHouse, Bonus: FullHouse.Bonus(), Indices: idx}
	}
	if idx := flushIndices(cards); idx != nil {
		return Evaluation{Category: Flush, Bonus: Flush.Bonus(), Indices: idx}
	}
	if idx := straightIndices(cards); idx != nil {
		return Evaluation{Category: Straight, Bonus: Straight.Bonus(), Indices: idx}
	}
	if idx := ofAKindIndices(counts, 3); idx != nil {
		return Evaluation{Category: ThreeOfAKind, Bonus: ThreeOfAKind.Bonus(), Indices: idx}
	}
	if idx := twoPairIndices(counts); idx != nil {
		return Evaluation{Category: TwoPair, Bonus: TwoPair.Bonus(), Indices: idx}
	}
	if idx := ofAKindIndices(counts, 2); idx != nil {
		return Evaluation{Category: OnePair, Bonus: OnePair.Bonus(), Indices: idx}
	}
	return Evaluation{Category: HighCard, Indices: allIndices(cards)}
}

// rankGroup records where a rank appears in the hand, in input order.
type rankGroup struct {
	rank    game.Rank
	indices []int
}

// rankCounts groups card positions by rank, ranks ordered high to low so
// kind detectors prefer the stronger rank on equal counts.
func rankCounts(cards []game.Card) []rankGroup {
	byRank := map[game.Rank][]int{}
	for i, c := range cards {
		byRank[c.Rank] = append(byRank[c.Rank], i)
	}
	groups := make([]rankGroup, 0, len(byRank))
	for r, idx := range byRank {
		groups = append(groups, rankGroup{rank: r, indices: idx})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].rank > groups[j].rank })
	return groups
}

func ofAKindIndices(groups []rankGroup, n int) []int {
	for _, g := range groups {
		if len(g.indices) >= n {
			return append([]int(nil), g.indices[:n]...)
		}
	}
	return nil
}

func fullHouseIndices(groups []rankGroup) []int {
	var three, pair []int
	for _, g := range groups {
		if len(g.indices) >= 3 && three == nil {
			three = g.indices[:3]
			continue
		}
		if len(g.indices) >= 2 && pair == nil {
			pair = g.indices[:2]
		}
	}
	if three == nil || pair == nil {
		return nil
	}
	out := append([]int(nil), three...)
	return append(out, pair...)
}

func twoPairIndices(groups []rankGroup) []int {
	var out []int
	pairs := 0
	for _, g := range groups {
		if len(g.indices) == 2 {
			out = append(out, g.indices...)
			pairs++
		}
	}
	if pairs < 2 {
		return nil
	}
	return out[:4]
}

// flushIndices requires exactly five cards of one suit.
func flushIndices(cards []game.Card) []int {
	if len(cards) != 5 {
		return nil
	}
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			return nil
		}
	}
	return allIndices(cards)
}

// straightIndices detects five-card runs, including wrap-around sequences
// such as Q-K-A-2-3, via a circular-gap test: the four consecutive gaps of
// the sorted unique ranks plus the wrap gap (13 minus the span) must form
// the multiset {1,1,1,1,9}.
func straightIndices(cards []game.Card) []int {
	if len(cards) != 5 {
		return nil
	}
	values := make([]int, 0, 5)
	seen := map[int]bool{}
	for _, c := range cards {
		v := int(c.Rank)
		if seen[v] {
			return nil
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Ints(values)

	gaps := make([]int, 0, 5)
	for i := 1; i < len(values); i++ {
		gaps = append(gaps, values[i]-values[i-1])
	}
	gaps = append(gaps, 13-(values[4]-values[0]))

	ones, nines := 0, 0
	for _, g := range gaps {
		switch g {
		case 1:
			ones++
		case 9:
			nines++
		}
	}
	if ones == 4 && nines == 1 {
		return allIndices(cards)
	}
	return nil
}

// royalFlushIndices matches a flush whose ranks are exactly {10,J,Q,K,A}.
func royalFlushIndices(cards []game.Card) []int {
	if flushIndices(cards) == nil {
		return nil
	}
	need := map[game.Rank]bool{10: true, game.Jack: true, game.Queen: true, game.King: true, game.Ace: true}
	for _, c := range cards {
		if !need[c.Rank] {
			return nil
		}
		delete(need, c.Rank)
	}
	if len(need) != 0 {
		return nil
	}
	return allIndices(cards)
}

func allIndices(cards []game.Card) []int {
	out := make([]int, len(cards))
	for i := range cards {
		out[i] = i
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
