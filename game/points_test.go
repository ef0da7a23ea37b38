package game

import (
	"testing"

	"github.com/eadyb/EuchreMobile/deck"
	utils "github.com/eadyb/EuchreMobile/internal"
)

func TestPointValue(t *testing.T) {
	t.Run("trump cards take the trump table", func(t *testing.T) {
		tt := []struct {
			rank deck.Rank
			want int
		}{
			{deck.Nine, 14},
			{deck.Ten, 15},
			{deck.Jack, 20},
			{deck.Queen, 16},
			{deck.King, 17},
			{deck.Ace, 18},
		}
		for _, tc := range tt {
			got := PointValue(deck.NewCard(tc.rank, deck.Hearts), deck.Hearts, deck.NoSuit)
			if got != tc.want {
				utils.TableFailureMessage(t, tc.rank.String(), got, tc.want)
			}
		}
	})

	t.Run("the left bower outranks everything but the right", func(t *testing.T) {
		right := PointValue(deck.NewCard(deck.Jack, deck.Hearts), deck.Hearts, deck.NoSuit)
		left := PointValue(deck.NewCard(deck.Jack, deck.Diamonds), deck.Hearts, deck.NoSuit)
		trumpAce := PointValue(deck.NewCard(deck.Ace, deck.Hearts), deck.Hearts, deck.NoSuit)

		utils.AssertEqual(t, right, 20)
		utils.AssertEqual(t, left, 19)
		utils.AssertEqual(t, trumpAce, 18)
	})

	t.Run("only the Jack of the same color is a bower", func(t *testing.T) {
		// black Jacks against red trump are plain off-suit cards
		got := PointValue(deck.NewCard(deck.Jack, deck.Spades), deck.Hearts, deck.NoSuit)
		utils.AssertEqual(t, got, 4)
	})

	t.Run("lead suit cards take the lead table", func(t *testing.T) {
		tt := []struct {
			rank deck.Rank
			want int
		}{
			{deck.Nine, 8},
			{deck.Ten, 9},
			{deck.Jack, 10},
			{deck.Queen, 11},
			{deck.King, 12},
			{deck.Ace, 13},
		}
		for _, tc := range tt {
			got := PointValue(deck.NewCard(tc.rank, deck.Clubs), deck.Hearts, deck.Clubs)
			if got != tc.want {
				utils.TableFailureMessage(t, tc.rank.String(), got, tc.want)
			}
		}
	})

	t.Run("trump beats lead for the same card", func(t *testing.T) {
		// lead suit is also trump: trump table wins
		got := PointValue(deck.NewCard(deck.Nine, deck.Hearts), deck.Hearts, deck.Hearts)
		utils.AssertEqual(t, got, 14)
	})

	t.Run("everything else is off-suit", func(t *testing.T) {
		tt := []struct {
			rank deck.Rank
			want int
		}{
			{deck.Nine, 2},
			{deck.Ten, 3},
			{deck.Jack, 4},
			{deck.Queen, 5},
			{deck.King, 6},
			{deck.Ace, 7},
		}
		for _, tc := range tt {
			got := PointValue(deck.NewCard(tc.rank, deck.Spades), deck.Hearts, deck.Clubs)
			if got != tc.want {
				utils.TableFailureMessage(t, tc.rank.String(), got, tc.want)
			}
		}
	})

	t.Run("no trump and no lead is all off-suit", func(t *testing.T) {
		for _, s := range deck.Suits() {
			got := PointValue(deck.NewCard(deck.Ace, s), deck.NoSuit, deck.NoSuit)
			utils.AssertEqual(t, got, 7)
		}
	})
}

func TestAssignPoints(t *testing.T) {
	t.Run("reassignment is idempotent", func(t *testing.T) {
		h := deck.Hand{
			deck.NewCard(deck.Jack, deck.Diamonds),
			deck.NewCard(deck.Ace, deck.Clubs),
			deck.NewCard(deck.Nine, deck.Hearts),
		}
		AssignPoints(h, deck.Hearts, deck.Clubs)
		first := append(deck.Hand{}, h...)
		AssignPoints(h, deck.Hearts, deck.Clubs)

		utils.AssertDeepEqual(t, h, first)
		utils.AssertEqual(t, h[0].PointValue, 19)
		utils.AssertEqual(t, h[1].PointValue, 13)
		utils.AssertEqual(t, h[2].PointValue, 14)
	})

	t.Run("values shift when trump changes", func(t *testing.T) {
		h := deck.Hand{deck.NewCard(deck.Jack, deck.Spades)}
		AssignPoints(h, deck.Spades, deck.NoSuit)
		utils.AssertEqual(t, h[0].PointValue, 20)

		AssignPoints(h, deck.Hearts, deck.NoSuit)
		utils.AssertEqual(t, h[0].PointValue, 4)
	})
}
