package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBidStateString(t *testing.T) {
	assert.Equal(t, "Round1Order", Round1Order.String())
	assert.Equal(t, "Round1PickupDiscard", Round1PickupDiscard.String())
	assert.Equal(t, "Round2AnySuit", Round2AnySuit.String())
	assert.Equal(t, "Redeal", Redeal.String())
	assert.Equal(t, "Decided", Decided.String())
	assert.Equal(t, "", BidState(99).String())
}
