package deck

import "fmt"

// Hand represents the cards held by one seat
type Hand []Card

// Add adds a card to the hand
func (h *Hand) Add(c Card) {
	*h = append(*h, c)
}

// Remove removes and returns the card at index i
func (h *Hand) Remove(i int) (Card, error) {
	cards := *h
	if i < 0 || i >= len(cards) {
		return Card{}, fmt.Errorf("card index %d out of range for hand of %d", i, len(cards))
	}
	c := cards[i]
	*h = append(cards[:i], cards[i+1:]...)
	return c, nil
}

// Count returns the number of cards of the given suit
func (h Hand) Count(s Suit) int {
	n := 0
	for _, c := range h {
		if c.Suit == s {
			n++
		}
	}
	return n
}

// Lowest returns the index of the first card holding the lowest
// point value in the hand, or -1 for an empty hand.
func (h Hand) Lowest() int {
	idx := -1
	for i, c := range h {
		if idx == -1 || c.PointValue < h[idx].PointValue {
			idx = i
		}
	}
	return idx
}
