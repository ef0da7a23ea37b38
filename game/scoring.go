package game

import (
	"github.com/eadyb/EuchreMobile/deck"
)

const (
	marchPoints  = 2
	euchrePoints = 2
	singlePoints = 1
)

// Team returns the team a seat belongs to. Seats 0 and 2 form
// team 0; seats 1 and 3 form team 1.
func Team(seat int) int {
	return seat % 2
}

// TrickWinner returns the seat holding the highest-valued card in
// a complete trick. A trick with an empty slot is a precondition
// violation and returns ErrIncompleteTrick.
func TrickWinner(t *deck.Trick) (int, error) {
	if t == nil {
		return 0, ErrIncompleteTrick
	}
	winner, highest := 0, 0
	for seat, c := range t.Cards {
		if c == nil {
			return 0, ErrIncompleteTrick
		}
		if c.PointValue > highest {
			highest = c.PointValue
			winner = seat
		}
	}
	return winner, nil
}

// HandAward maps a finished hand's trick counts to a point award.
// A march (all 5 tricks) scores 2; euchring the calling team
// scores 2; otherwise taking 3 or 4 tricks scores 1. Exactly one
// team scores per hand.
func HandAward(tricksWon [2]int, decidingTeam int) (team, points int) {
	winningTeam := 0
	if tricksWon[1] >= 3 {
		winningTeam = 1
	}
	switch {
	case tricksWon[winningTeam] == 5:
		return winningTeam, marchPoints
	case decidingTeam != winningTeam:
		return winningTeam, euchrePoints
	default:
		return winningTeam, singlePoints
	}
}
