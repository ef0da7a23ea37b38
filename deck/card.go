package deck

import "fmt"

// Suit represents a suit in a euchre deck
type Suit int

var suitNames = []string{"Hearts", "Diamonds", "Clubs", "Spades"}

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NoSuit stands in for an absent suit: an undecided trump,
// or the lead suit of a trick with no cards in it yet.
const NoSuit Suit = -1

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return "undecided"
	}
	return suitNames[s]
}

// SameColor returns the other suit of the same color.
// Hearts <-> Diamonds (red), Clubs <-> Spades (black).
func (s Suit) SameColor() Suit {
	switch s {
	case Hearts:
		return Diamonds
	case Diamonds:
		return Hearts
	case Clubs:
		return Spades
	case Spades:
		return Clubs
	default:
		return NoSuit
	}
}

// Suits returns all four suits in declaration order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// ParseSuit maps a suit name to a Suit
func ParseSuit(name string) (Suit, bool) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), true
		}
	}
	return NoSuit, false
}

// Rank represents a rank in a euchre deck. Ranks carry no
// intrinsic order; a card's strength comes from its point value.
type Rank int

var rankNames = []string{"9", "10", "Jack", "Queen", "King", "Ace"}

const (
	Nine Rank = iota
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return ""
	}
	return rankNames[r]
}

// Ranks returns all six ranks in declaration order
func Ranks() []Rank {
	return []Rank{Nine, Ten, Jack, Queen, King, Ace}
}

// Card represents a playing card. Identity is (Suit, Rank);
// PointValue is derived state, recomputed by the point assigner
// whenever the trump or lead suit changes.
type Card struct {
	Suit       Suit `json:"suit"`
	Rank       Rank `json:"rank"`
	PointValue int  `json:"pointValue"`
}

// NewCard constructs a card with no point value assigned
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// Same reports whether two cards are the same physical card,
// ignoring point values.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
