package poker

import (
	"math/rand"

	"pokerquest/internal/game"
)

// Deck owns the 52-card population plus a wildcard draw probability. Draws
// never duplicate a (rank, suit) pair already held by the caller, reshuffle
// transparently when the pile runs out, and damp streaks of wildcards and
// face cards so hands do not clump.
type Deck struct {
	rng            *rand.Rand
	pile           []game.Card
	wildcardChance float64
	wildStreak     int
	faceStreak     int
	nextID         int
}

// faceStreakWindow is how far ahead the draw looks for a low card once too
// many face cards arrived in a row.
const faceStreakWindow = 8

// NewDeck creates a shuffled deck with an explicit random source.
func NewDeck(rng *rand.Rand, wildcardChance float64) *Deck {
	d := &Deck{rng: rng, wildcardChance: wildcardChance, nextID: 1}
	d.rebuild(nil)
	return d
}

// rebuild refills the pile with every standard card not in the exclusion
// set and shuffles it (Fisher-Yates).
func (d *Deck) rebuild(exclude map[cardKey]bool) {
	d.pile = d.pile[:0]
	for _, s := range game.Suits {
		for r := game.MinRank; r <= game.MaxRank; r++ {
			if exclude[cardKey{s, r}] {
				continue
			}
			d.pile = append(d.pile, game.Card{Suit: s, Rank: r})
		}
	}
	for i := len(d.pile) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.pile[i], d.pile[j] = d.pile[j], d.pile[i]
	}
}

type cardKey struct {
	suit game.Suit
	rank game.Rank
}

// Draw returns count new cards, excluding (rank, suit) duplicates of the
// cards currently held by the caller. Wildcards are exempt from the dedup
// set. The deck rebuilds its remaining population when it runs dry instead
// of failing or short-changing the caller.
func (d *Deck) Draw(count int, held []game.Card) []game.Card {
	exclude := map[cardKey]bool{}
	for _, c := range held {
		if !c.Wildcard {
			exclude[cardKey{c.Suit, c.Rank}] = true
		}
	}

	out := make([]game.Card, 0, count)
	for len(out) < count {
		if d.rollWildcard() {
			out = append(out, game.Card{ID: d.takeID(), Wildcard: true})
			d.wildStreak++
			d.faceStreak++
			continue
		}
		d.wildStreak = 0

		c, ok := d.takeStandard(exclude)
		if !ok {
			// Pile exhausted (or fully excluded): start a fresh population
			// minus the held cards and keep going.
			d.rebuild(exclude)
			c, ok = d.takeStandard(exclude)
			if !ok {
				// The caller holds every remaining card; hand out a
				// wildcard rather than returning short.
				out = append(out, game.Card{ID: d.takeID(), Wildcard: true})
				continue
			}
		}
		c.ID = d.takeID()
		out = append(out, c)
		exclude[cardKey{c.Suit, c.Rank}] = true
		if c.IsFace() {
			d.faceStreak++
		} else {
			d.faceStreak = 0
		}
	}
	return out
}

// Remaining reports how many standard cards are left before a rebuild.
func (d *Deck) Remaining() int { return len(d.pile) }

// rollWildcard applies streak damping: each consecutive wildcard halves the
// chance of the next one.
func (d *Deck) rollWildcard() bool {
	chance := d.wildcardChance
	for i := 0; i < d.wildStreak; i++ {
		chance /= 2
	}
	return chance > 0 && d.rng.Float64() < chance
}

// takeStandard pops the next non-excluded card. After two face cards in a
// row it scans a short window of the pile for a low card first.
func (d *Deck) takeStandard(exclude map[cardKey]bool) (game.Card, bool) {
	pick := -1
	for i := len(d.pile) - 1; i >= 0; i-- {
		c := d.pile[i]
		if exclude[cardKey{c.Suit, c.Rank}] {
			continue
		}
		if pick == -1 {
			pick = i
		}
		if d.faceStreak < 2 || !c.IsFace() {
			pick = i
			break
		}
		if len(d.pile)-1-i >= faceStreakWindow {
			break
		}
	}
	if pick == -1 {
		return game.Card{}, false
	}
	c := d.pile[pick]
	d.pile = append(d.pile[:pick], d.pile[pick+1:]...)
	return c, true
}

func (d *Deck) takeID() int {
	id := d.nextID
	d.nextID++
	return id
}
