package protocol

// Kind identifies the sort of decision the engine is asking the
// host layer for.
type Kind int

const (
	None Kind = iota
	// OrderOrPickupChoice asks a yes/no on the kitty card in bidding round 1
	OrderOrPickupChoice
	// SuitOrPassChoice asks for a trump suit (or a pass) in bidding round 2
	SuitOrPassChoice
	// DiscardChoice asks the dealer for the index of the card to discard
	DiscardChoice
	// PlayCardChoice asks for the index of the card to play into the trick
	PlayCardChoice
	// Acknowledgement gates progress on the human confirming a message
	Acknowledgement
)

var KindNames = map[Kind]string{
	None:                "None",
	OrderOrPickupChoice: "OrderOrPickupChoice",
	SuitOrPassChoice:    "SuitOrPassChoice",
	DiscardChoice:       "DiscardChoice",
	PlayCardChoice:      "PlayCardChoice",
	Acknowledgement:     "Acknowledgement",
}

var NameToKind = map[string]Kind{
	"None":                None,
	"OrderOrPickupChoice": OrderOrPickupChoice,
	"SuitOrPassChoice":    SuitOrPassChoice,
	"DiscardChoice":       DiscardChoice,
	"PlayCardChoice":      PlayCardChoice,
	"Acknowledgement":     Acknowledgement,
}

func (k Kind) String() string {
	return KindNames[k]
}

// Response vocabulary for the choice kinds. Suit choices use the
// suit name ("Hearts", "Diamonds", "Clubs", "Spades"); index
// choices use the decimal index into the hand.
const (
	Yes          = "Yes"
	No           = "No"
	Pass         = "Pass"
	Acknowledged = "Acknowledged"
)

// DecisionRequest is a message from the engine to the host layer.
// The host renders the prompt and eventually supplies a
// DecisionResponse matching the requested kind.
type DecisionRequest struct {
	PlayerID string `json:"playerID"`
	Prompt   string `json:"prompt"`
	Kind     Kind   `json:"kind"`
}

// DecisionResponse is the host's answer to a DecisionRequest
type DecisionResponse struct {
	PlayerID string `json:"playerID"`
	Value    string `json:"value"`
}

// PlayerInfo identifies a player at a seat
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	Seat     int    `json:"seat"`
}
