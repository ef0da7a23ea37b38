package deck

import (
	"errors"
	"math/rand"
	"time"
)

// Size is the number of cards in a euchre deck (6 ranks x 4 suits)
const Size = 24

// ErrEmptyDeck is returned when more cards are requested than the deck holds
var ErrEmptyDeck = errors.New("cannot deal from an empty deck")

// Deck represents the cards not yet dealt
type Deck []Card

// New creates an unshuffled euchre deck
func New() Deck {
	cards := make(Deck, 0, Size)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards using r. A nil r falls
// back to a time-seeded source.
func (d *Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}
}

// Deal deals n cards from the top of the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return nil, ErrEmptyDeck
	}
	startingIndex := numCardsInDeck - n
	dealt := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return dealt, nil
}

// DealOne deals a single card from the top of the deck
func (d *Deck) DealOne() (Card, error) {
	dealt, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return dealt[0], nil
}
