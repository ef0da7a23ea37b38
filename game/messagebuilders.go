package game

import (
	"fmt"

	"github.com/eadyb/EuchreMobile/deck"
)

const (
	chooseSuitPrompt = "Choose the trump suit"
	discardPrompt    = "Select a card to discard"
	playCardPrompt   = "Select a card to play"
)

func buildOrderUpPrompt(kitty deck.Card, dealer int) string {
	return fmt.Sprintf("Would you like to order up the %s to player %d?", kitty, dealer)
}

func buildPickUpPrompt(kitty deck.Card) string {
	return fmt.Sprintf("Would you like to pick up the %s?", kitty)
}

func buildPassedMessage(seat int) string {
	return fmt.Sprintf("Player %d passed.", seat)
}

func buildTrumpMessage(seat int, kitty deck.Card, trump deck.Suit, pickedUp bool) string {
	if pickedUp {
		return fmt.Sprintf("Player %d picked up the %s. %s is now Trump.", seat, kitty, trump)
	}
	return fmt.Sprintf("Player %d ordered up the %s to the dealer. %s is now Trump.", seat, kitty, trump)
}

func buildCalledMessage(seat int, trump deck.Suit) string {
	return fmt.Sprintf("Player %d called %s. %s is now Trump.", seat, trump, trump)
}

func buildRedealMessage(dealer int) string {
	return fmt.Sprintf("No one decided on trump. Deal goes to player %d.", dealer)
}

func buildTrickWonMessage(seat int) string {
	return fmt.Sprintf("Player %d won the trick!", seat)
}

func buildHandWonMessage(team int) string {
	return fmt.Sprintf("Team %d won the hand!", team)
}

func buildGameWonMessage(team int) string {
	return fmt.Sprintf("Team %d won the game!", team)
}
