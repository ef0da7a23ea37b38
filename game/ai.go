package game

import (
	"fmt"

	"github.com/eadyb/EuchreMobile/deck"
)

const (
	orderUpThreshold = 3
	pickUpThreshold  = 2
	callThreshold    = 20
)

// Brain makes decisions for computer-controlled seats. All
// decisions are computed synchronously; a Brain never suspends.
type Brain interface {
	// ShouldOrderUp decides whether to accept the kitty suit as
	// trump in round 1.
	ShouldOrderUp(hand deck.Hand, kitty deck.Card, isDealer bool) bool
	// CallSuit picks a trump suit in round 2, excluding the kitty's
	// original suit, or declines.
	CallSuit(hand deck.Hand, excluded deck.Suit) (deck.Suit, bool, error)
	// Discard picks the index of the card the dealer should shed
	// from a six-card hand. Point values must already be assigned
	// under the declared trump.
	Discard(hand deck.Hand) int
	// PlayCard picks the index of the card to play into the trick
	PlayCard(hand deck.Hand, trick *deck.Trick, trump deck.Suit) int
}

// HeuristicBrain is the default deterministic policy
type HeuristicBrain struct{}

// ShouldOrderUp orders up with 3 or more cards of the kitty suit,
// or picks up as dealer with 2 or more.
func (HeuristicBrain) ShouldOrderUp(hand deck.Hand, kitty deck.Card, isDealer bool) bool {
	count := hand.Count(kitty.Suit)
	if isDealer {
		return count >= pickUpThreshold
	}
	return count >= orderUpThreshold
}

// CallSuit sums, for each legal suit, the point values its cards
// would hold were that suit trump, and calls the best suit whose
// sum exceeds the threshold.
func (HeuristicBrain) CallSuit(hand deck.Hand, excluded deck.Suit) (deck.Suit, bool, error) {
	var sums [4]int
	for _, c := range hand {
		if c.Suit < 0 || int(c.Suit) >= len(sums) {
			return deck.NoSuit, false, fmt.Errorf("%w: suit %d", ErrUnknownSuit, c.Suit)
		}
		sums[c.Suit] += PointValue(c, c.Suit, deck.NoSuit)
	}

	best := deck.NoSuit
	bestSum := callThreshold
	for _, s := range deck.Suits() {
		if s == excluded {
			continue
		}
		if sums[s] > bestSum {
			best = s
			bestSum = sums[s]
		}
	}
	return best, best != deck.NoSuit, nil
}

// Discard picks the lowest-valued card in the hand. Equal values
// resolve to the later card.
func (HeuristicBrain) Discard(hand deck.Hand) int {
	idx := 0
	for i, c := range hand {
		if c.PointValue <= hand[idx].PointValue {
			idx = i
		}
	}
	return idx
}

// PlayCard leads its lowest card, or searches for the cheapest
// card that takes the trick: the lowest winning trump off the lead
// suit, then the lowest winning lead-suit card, then the lowest
// lead-suit card as a sacrifice. With nothing suitable it sheds
// its lowest card.
func (HeuristicBrain) PlayCard(hand deck.Hand, trick *deck.Trick, trump deck.Suit) int {
	highest := trick.Highest()
	if highest == 0 {
		return hand.Lowest()
	}

	lead := trick.LeadSuit()
	winningTrump, winningLead, underLead := -1, -1, -1
	for i, c := range hand {
		beats := c.PointValue > highest
		switch {
		case beats && isTrumpCard(c, trump) && c.Suit != lead:
			if winningTrump == -1 || c.PointValue < hand[winningTrump].PointValue {
				winningTrump = i
			}
		case beats && c.Suit == lead:
			if winningLead == -1 || c.PointValue < hand[winningLead].PointValue {
				winningLead = i
			}
		case !beats && c.Suit == lead:
			if underLead == -1 || c.PointValue < hand[underLead].PointValue {
				underLead = i
			}
		}
	}

	switch {
	case winningTrump != -1:
		return winningTrump
	case winningLead != -1:
		return winningLead
	case underLead != -1:
		return underLead
	}
	return hand.Lowest()
}

// isTrumpCard reports whether c counts as trump, including the
// left bower.
func isTrumpCard(c deck.Card, trump deck.Suit) bool {
	if trump == deck.NoSuit {
		return false
	}
	return c.Suit == trump || (c.Suit == trump.SameColor() && c.Rank == deck.Jack)
}
