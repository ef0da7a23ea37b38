package game

import (
	"github.com/eadyb/EuchreMobile/deck"
	"github.com/eadyb/EuchreMobile/protocol"
)

// Snapshot is a read-only view of the table for the host layer.
// The kitty is visible only while trump is undecided.
type Snapshot struct {
	Trump       string                     `json:"trump"`
	Dealer      int                        `json:"dealer"`
	CurrentTurn int                        `json:"currentTurn"`
	BidState    string                     `json:"bidState"`
	Awaiting    string                     `json:"awaiting"`
	Scores      [2]int                     `json:"scores"`
	TricksWon   [2]int                     `json:"tricksWon"`
	Kitty       *deck.Card                 `json:"kitty,omitempty"`
	Hands       [deck.NumSeats][]deck.Card `json:"hands"`
	Trick       [deck.NumSeats]*deck.Card  `json:"trick"`
	GameOver    bool                       `json:"gameOver"`
}

func (g *euchre) Snapshot() Snapshot {
	snap := Snapshot{
		Trump:       g.Trump.String(),
		Dealer:      g.Dealer,
		CurrentTurn: g.CurrentTurn,
		BidState:    g.BidState.String(),
		Awaiting:    protocol.KindNames[g.expected],
		Scores:      g.Scores,
		TricksWon:   g.TricksWon,
		GameOver:    g.gameOver,
	}
	if g.Trump == deck.NoSuit && g.Kitty != nil {
		kitty := *g.Kitty
		snap.Kitty = &kitty
	}
	for i := range g.Hands {
		snap.Hands[i] = append([]deck.Card{}, g.Hands[i]...)
	}
	for i, c := range g.Trick.Cards {
		if c != nil {
			played := *c
			snap.Trick[i] = &played
		}
	}
	return snap
}
