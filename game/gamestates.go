package game

// Stage represents the two phases a hand moves through
type Stage int

const (
	stageBidding Stage = iota
	stagePlaying
)

// BidState represents the state of the two-round trump selection
type BidState int

const (
	// Round1Order offers the kitty suit to each seat in turn
	Round1Order BidState = iota
	// Round1PickupDiscard is the dealer's mandatory discard after a
	// round 1 declaration
	Round1PickupDiscard
	// Round2AnySuit lets each seat call any suit but the kitty's
	Round2AnySuit
	// Redeal rotates the dealer and starts over with a fresh hand
	Redeal
	// Decided means trump is fixed and trick play can begin
	Decided
)

var bidStateNames = []string{
	"Round1Order",
	"Round1PickupDiscard",
	"Round2AnySuit",
	"Redeal",
	"Decided",
}

func (b BidState) String() string {
	if b < 0 || int(b) >= len(bidStateNames) {
		return ""
	}
	return bidStateNames[b]
}
