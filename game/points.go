package game

import (
	"github.com/eadyb/EuchreMobile/deck"
)

// Point value tables, indexed by rank (9, 10, Jack, Queen, King, Ace).
// The Jack of trump (right bower) is the highest card at 20; the Jack
// of the same-color suit (left bower) slots in just below it at 19.
var (
	trumpValues   = [...]int{14, 15, 20, 16, 17, 18}
	leadValues    = [...]int{8, 9, 10, 11, 12, 13}
	offSuitValues = [...]int{2, 3, 4, 5, 6, 7}
)

const leftBowerValue = 19

// PointValue returns the effective strength of a card given the
// declared trump suit and the lead suit of the active trick. Either
// may be deck.NoSuit, in which case the corresponding rules do not
// apply; with both absent every card takes its off-suit value.
func PointValue(c deck.Card, trump, lead deck.Suit) int {
	switch {
	case trump != deck.NoSuit && c.Suit == trump:
		return trumpValues[c.Rank]
	case trump != deck.NoSuit && c.Suit == trump.SameColor() && c.Rank == deck.Jack:
		return leftBowerValue
	case lead != deck.NoSuit && c.Suit == lead:
		return leadValues[c.Rank]
	default:
		return offSuitValues[c.Rank]
	}
}

// AssignPoints recomputes the point value of every card in the hand
func AssignPoints(h deck.Hand, trump, lead deck.Suit) {
	for i := range h {
		h[i].PointValue = PointValue(h[i], trump, lead)
	}
}

// assignPoints recomputes point values across all hands and the
// cards already played into the current trick. Called eagerly
// whenever trump or the lead suit changes.
func (g *euchre) assignPoints() {
	lead := g.Trick.LeadSuit()
	for i := range g.Hands {
		AssignPoints(g.Hands[i], g.Trump, lead)
	}
	for _, c := range g.Trick.Cards {
		if c != nil {
			c.PointValue = PointValue(*c, g.Trump, lead)
		}
	}
}
