package game

// Suit identifies one of the four standard suits.
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists all four suits in a stable order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank is the numeric rank of a card: 2-10 literal, J=11, Q=12, K=13, A=14.
type Rank int

const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14

	MinRank Rank = 2
	MaxRank Rank = Ace
)

// Card is an immutable playing-card value. A card is either a standard card
// (suit and rank set) or a wildcard (suit/rank absent). FaceDown and Banned
// are ephemeral presentation flags and never affect evaluation.
type Card struct {
	ID       int  `json:"id"`
	Suit     Suit `json:"suit,omitempty"`
	Rank     Rank `json:"rank,omitempty"`
	Wildcard bool `json:"wildcard,omitempty"`

	FaceDown bool `json:"face_down,omitempty"`
	Banned   bool `json:"banned,omitempty"`
}

// Value returns the scoring value of the card. Wildcards score as an Ace.
func (c Card) Value() int {
	if c.Wildcard {
		return int(Ace)
	}
	return int(c.Rank)
}

// IsFace reports whether the card is a face card (J, Q, K) or an Ace.
// Wildcards count as face cards for draw-damping purposes.
func (c Card) IsFace() bool {
	return c.Wildcard || c.Rank >= Jack
}

func (c Card) String() string {
	if c.Wildcard {
		return "wildcard"
	}
	names := map[Rank]string{Jack: "J", Queen: "Q", King: "K", Ace: "A"}
	r, ok := names[c.Rank]
	if !ok {
		r = string(rune('0' + c.Rank%10))
		if c.Rank == 10 {
			r = "10"
		}
	}
	return r + " of " + string(c.Suit)
}
