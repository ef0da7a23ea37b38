package deck

import (
	"testing"
)

func TestSuit(t *testing.T) {
	t.Run("same color pairs", func(t *testing.T) {
		tt := []struct {
			suit Suit
			want Suit
		}{
			{Hearts, Diamonds},
			{Diamonds, Hearts},
			{Clubs, Spades},
			{Spades, Clubs},
			{NoSuit, NoSuit},
		}
		for _, tc := range tt {
			if got := tc.suit.SameColor(); got != tc.want {
				t.Errorf("SameColor(%s): got %s, want %s", tc.suit, got, tc.want)
			}
		}
	})

	t.Run("names round-trip through ParseSuit", func(t *testing.T) {
		for _, s := range Suits() {
			parsed, ok := ParseSuit(s.String())
			if !ok || parsed != s {
				t.Errorf("ParseSuit(%q): got %v, %t", s.String(), parsed, ok)
			}
		}
	})

	t.Run("unknown names do not parse", func(t *testing.T) {
		if _, ok := ParseSuit("Cups"); ok {
			t.Error("expected ParseSuit to reject an unknown name")
		}
	})

	t.Run("no suit reads as undecided", func(t *testing.T) {
		if got := NoSuit.String(); got != "undecided" {
			t.Errorf("got %q, want %q", got, "undecided")
		}
	})
}

func TestCard(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		c := NewCard(Jack, Spades)
		if got := c.String(); got != "Jack of Spades" {
			t.Errorf("got %q, want %q", got, "Jack of Spades")
		}
	})

	t.Run("identity ignores point values", func(t *testing.T) {
		a := Card{Suit: Hearts, Rank: Ace, PointValue: 18}
		b := Card{Suit: Hearts, Rank: Ace, PointValue: 2}
		if !a.Same(b) {
			t.Error("expected cards with equal suit and rank to be the same card")
		}
		if a.Same(NewCard(Ace, Diamonds)) {
			t.Error("expected cards of different suits to differ")
		}
	})
}
