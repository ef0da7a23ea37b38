package deck

import "fmt"

// NumSeats is the number of seats at the table
const NumSeats = 4

// Trick holds the cards played in one round of play, one slot
// per seat. The first card played becomes the lead card, whose
// suit drives point valuation for the rest of the trick.
type Trick struct {
	Cards [NumSeats]*Card
	Lead  *Card
}

// NewTrick constructs an empty trick
func NewTrick() *Trick {
	return &Trick{}
}

// Play places a card in the seat's slot. The card becomes the
// lead card if the trick was empty.
func (t *Trick) Play(seat int, c Card) error {
	if seat < 0 || seat >= NumSeats {
		return fmt.Errorf("seat %d out of range", seat)
	}
	if t.Cards[seat] != nil {
		return fmt.Errorf("seat %d has already played this trick", seat)
	}
	played := c
	t.Cards[seat] = &played
	if t.Lead == nil {
		t.Lead = &played
	}
	return nil
}

// Complete reports whether all four seats have played
func (t *Trick) Complete() bool {
	for _, c := range t.Cards {
		if c == nil {
			return false
		}
	}
	return true
}

// Clear empties all slots and resets the lead card
func (t *Trick) Clear() {
	for i := range t.Cards {
		t.Cards[i] = nil
	}
	t.Lead = nil
}

// LeadSuit returns the suit of the lead card, or NoSuit for an
// empty trick.
func (t *Trick) LeadSuit() Suit {
	if t.Lead == nil {
		return NoSuit
	}
	return t.Lead.Suit
}

// Highest returns the highest point value among the cards played
// so far, or 0 for an empty trick.
func (t *Trick) Highest() int {
	highest := 0
	for _, c := range t.Cards {
		if c != nil && c.PointValue > highest {
			highest = c.PointValue
		}
	}
	return highest
}
