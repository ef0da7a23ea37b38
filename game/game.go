package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/eadyb/EuchreMobile/deck"
	"github.com/eadyb/EuchreMobile/protocol"
)

var (
	ErrNilGame            = errors.New("game is nil")
	ErrNotStarted         = errors.New("game has not started")
	ErrAlreadyStarted     = errors.New("game has already started")
	ErrGameOver           = errors.New("game is already over")
	ErrAwaitingResponse   = errors.New("game is awaiting a response")
	ErrUnexpectedResponse = errors.New("game received unexpected response")
	ErrIncompleteTrick    = errors.New("cannot score an incomplete trick")
	ErrUnknownSuit        = errors.New("unrecognised suit in point accumulation")
)

const (
	// HandSize is the number of cards dealt to each seat
	HandSize = 5
	// NumTricks is the number of tricks in a hand
	NumTricks = 5
	// DefaultWinTarget ends the game when a team reaches it
	DefaultWinTarget = 10
	// NoSeat marks the absence of a seat (no declarer yet, no human seat)
	NoSeat = -1
	// RandomDealer asks the game to pick the first dealer at random
	RandomDealer = -1
)

// Game drives one table from deal to game end. Next advances play
// through computer seats until a human decision (or acknowledgement)
// is required; the returned requests must each be answered through
// ReceiveResponse before Next can proceed.
type Game interface {
	Start() error
	Next() ([]protocol.DecisionRequest, error)
	ReceiveResponse(protocol.DecisionResponse) ([]protocol.DecisionRequest, error)
	AwaitingResponse() protocol.Kind
	GameOver() bool
	Winner() (int, bool)
	Snapshot() Snapshot
	SpendBonus(points int) error
}

// Opts configures a new game. The zero value plays a human at
// seat 0 against three computer seats with dealer at seat 0.
type Opts struct {
	// Hands presets the first hand's cards; leave empty for a fresh deal
	Hands [deck.NumSeats]deck.Hand
	// Kitty presets the kitty card alongside preset Hands
	Kitty *deck.Card
	// Dealer is the first dealer's seat; RandomDealer picks one at random
	Dealer int
	// HumanSeat is the seat resolved through decision requests;
	// NoSeat runs all four seats on the Brain
	HumanSeat int
	// HumanID is stamped on outgoing decision requests
	HumanID string
	// Brain decides for computer seats; nil defaults to HeuristicBrain
	Brain Brain
	// WinTarget defaults to DefaultWinTarget
	WinTarget int
	// KeepGoneOnceOnRedeal carries the exhausted round 1 across a
	// redeal, so the fresh hand starts bidding in round 2
	KeepGoneOnceOnRedeal bool
	// Rand seeds dealing and shuffling; nil uses a time-seeded source
	Rand *rand.Rand
}

type euchre struct {
	Deck        deck.Deck
	Hands       [deck.NumSeats]deck.Hand
	Trick       *deck.Trick
	Kitty       *deck.Card
	KittySuit   deck.Suit
	Trump       deck.Suit
	Dealer      int
	CurrentTurn int
	OrderedUp   bool
	PickedUp    bool
	GoneOnce    bool
	// DecidingSeat is the seat that declared trump, or NoSeat
	DecidingSeat int
	TricksWon    [2]int
	Scores       [2]int
	BidState     BidState

	stage          Stage
	expected       protocol.Kind
	ackQueue       []string
	pendingDiscard bool
	humanSeat      int
	humanID        string
	brain          Brain
	winTarget      int
	keepGoneOnce   bool
	usePresetDeal  bool
	presetHands    [deck.NumSeats]deck.Hand
	presetKitty    *deck.Card
	started        bool
	gameOver       bool
	winningTeam    int
	rng            *rand.Rand
}

// NewEuchre constructs a new game of euchre
func NewEuchre(opts Opts) *euchre {
	g := &euchre{
		Trick:        deck.NewTrick(),
		Trump:        deck.NoSuit,
		KittySuit:    deck.NoSuit,
		Dealer:       opts.Dealer,
		DecidingSeat: NoSeat,
		humanSeat:    opts.HumanSeat,
		humanID:      opts.HumanID,
		brain:        opts.Brain,
		winTarget:    opts.WinTarget,
		keepGoneOnce: opts.KeepGoneOnceOnRedeal,
		winningTeam:  NoSeat,
		rng:          opts.Rand,
	}
	if g.brain == nil {
		g.brain = HeuristicBrain{}
	}
	if g.winTarget == 0 {
		g.winTarget = DefaultWinTarget
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := range opts.Hands {
		if len(opts.Hands[i]) > 0 {
			g.usePresetDeal = true
		}
	}
	if g.usePresetDeal {
		g.presetHands = opts.Hands
		g.presetKitty = opts.Kitty
	}
	return g
}

func (g *euchre) Start() error {
	if g == nil {
		return ErrNilGame
	}
	if g.started {
		return ErrAlreadyStarted
	}
	g.started = true
	if g.Dealer == RandomDealer {
		g.Dealer = g.rng.Intn(deck.NumSeats)
	}
	return g.newHand(false)
}

// newHand rebuilds and reshuffles the deck, deals four hands and
// the kitty, and resets the bidding state. The preset deal, if
// any, is consumed by the first hand only.
func (g *euchre) newHand(redeal bool) error {
	if g.usePresetDeal {
		g.usePresetDeal = false
		for i := range g.presetHands {
			g.Hands[i] = append(deck.Hand{}, g.presetHands[i]...)
		}
		if g.presetKitty != nil {
			kitty := *g.presetKitty
			g.Kitty = &kitty
			g.KittySuit = kitty.Suit
		}
	} else {
		g.Deck = deck.New()
		g.Deck.Shuffle(g.rng)
		for i := range g.Hands {
			dealt, err := g.Deck.Deal(HandSize)
			if err != nil {
				return err
			}
			hand := make(deck.Hand, HandSize)
			copy(hand, dealt)
			g.Hands[i] = hand
		}
		kitty, err := g.Deck.DealOne()
		if err != nil {
			return err
		}
		g.Kitty = &kitty
		g.KittySuit = kitty.Suit
	}

	g.Trick.Clear()
	g.Trump = deck.NoSuit
	g.OrderedUp = false
	g.PickedUp = false
	g.DecidingSeat = NoSeat
	g.TricksWon = [2]int{}
	g.stage = stageBidding
	g.CurrentTurn = (g.Dealer + 1) % deck.NumSeats
	if redeal && g.keepGoneOnce && g.GoneOnce {
		// round 1 was exhausted this bidding cycle and the policy
		// carries that across the redeal
		g.BidState = Round2AnySuit
	} else {
		g.GoneOnce = false
		g.BidState = Round1Order
	}
	g.assignPoints()
	return nil
}

func (g *euchre) AwaitingResponse() protocol.Kind {
	return g.expected
}

func (g *euchre) GameOver() bool {
	return g.gameOver
}

// Winner returns the winning team once the game is over
func (g *euchre) Winner() (int, bool) {
	if !g.gameOver {
		return NoSeat, false
	}
	return g.winningTeam, true
}

// SpendBonus adds host-granted bonus points to team 0's score,
// outside of hand scoring.
func (g *euchre) SpendBonus(points int) error {
	if points < 0 {
		return fmt.Errorf("bonus points must be non-negative, got %d", points)
	}
	g.Scores[0] += points
	return nil
}

// Next performs the next step of the hand: one computer seat's bid
// or card, a trick or hand scoring event, or a redeal. It returns
// decision requests whenever the human seat must act or confirm.
func (g *euchre) Next() ([]protocol.DecisionRequest, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if !g.started {
		return nil, ErrNotStarted
	}
	if g.expected != protocol.None {
		return nil, ErrAwaitingResponse
	}
	if g.gameOver {
		return nil, ErrGameOver
	}

	switch g.stage {
	case stageBidding:
		return g.nextBid()
	case stagePlaying:
		return g.nextPlay()
	}
	return nil, fmt.Errorf("could not match game stage %d", g.stage)
}

// ReceiveResponse applies the human's answer to the pending
// request. An out-of-vocabulary value is a protocol violation and
// propagates as an error wrapping ErrUnexpectedResponse.
func (g *euchre) ReceiveResponse(resp protocol.DecisionResponse) ([]protocol.DecisionRequest, error) {
	if g == nil {
		return nil, ErrNilGame
	}
	if !g.started {
		return nil, ErrNotStarted
	}
	if g.expected == protocol.None {
		return nil, ErrUnexpectedResponse
	}

	expected := g.expected
	g.expected = protocol.None

	switch expected {
	case protocol.Acknowledgement:
		// acknowledgements are free-form
		return g.flush(), nil

	case protocol.OrderOrPickupChoice:
		switch resp.Value {
		case protocol.Yes:
			return g.declareKittySuit(g.humanSeat)
		case protocol.No, protocol.Pass:
			return g.pass(g.humanSeat)
		}
		return nil, fmt.Errorf("%w: %q for %s", ErrUnexpectedResponse, resp.Value, expected)

	case protocol.SuitOrPassChoice:
		if resp.Value == protocol.Pass {
			return g.pass(g.humanSeat)
		}
		suit, ok := deck.ParseSuit(resp.Value)
		if !ok || suit == g.KittySuit {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnexpectedResponse, resp.Value, expected)
		}
		return g.declareSuit(g.humanSeat, suit)

	case protocol.DiscardChoice:
		idx, err := strconv.Atoi(resp.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnexpectedResponse, resp.Value, expected)
		}
		if _, err := g.Hands[g.Dealer].Remove(idx); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedResponse, err)
		}
		g.pendingDiscard = false
		g.finishBidding()
		return g.flush(), nil

	case protocol.PlayCardChoice:
		idx, err := strconv.Atoi(resp.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnexpectedResponse, resp.Value, expected)
		}
		if idx < 0 || idx >= len(g.Hands[g.humanSeat]) {
			return nil, fmt.Errorf("%w: card index %d for %s", ErrUnexpectedResponse, idx, expected)
		}
		return g.playCard(g.humanSeat, idx)
	}

	return nil, ErrUnexpectedResponse
}

// nextBid resolves one seat's bidding action
func (g *euchre) nextBid() ([]protocol.DecisionRequest, error) {
	if g.BidState == Redeal {
		g.Dealer = (g.Dealer + 1) % deck.NumSeats
		if err := g.newHand(true); err != nil {
			return nil, err
		}
		g.queueAck(buildRedealMessage(g.Dealer))
		return g.flush(), nil
	}

	seat := g.CurrentTurn
	if seat == g.humanSeat {
		return g.humanBidRequest()
	}

	if !g.GoneOnce {
		if g.brain.ShouldOrderUp(g.Hands[seat], *g.Kitty, seat == g.Dealer) {
			return g.declareKittySuit(seat)
		}
		return g.pass(seat)
	}

	suit, ok, err := g.brain.CallSuit(g.Hands[seat], g.KittySuit)
	if err != nil {
		return nil, err
	}
	if ok {
		return g.declareSuit(seat, suit)
	}
	return g.pass(seat)
}

func (g *euchre) humanBidRequest() ([]protocol.DecisionRequest, error) {
	var prompt string
	kind := protocol.SuitOrPassChoice
	if !g.GoneOnce {
		kind = protocol.OrderOrPickupChoice
		if g.CurrentTurn == g.Dealer {
			prompt = buildPickUpPrompt(*g.Kitty)
		} else {
			prompt = buildOrderUpPrompt(*g.Kitty, g.Dealer)
		}
	} else {
		prompt = chooseSuitPrompt
	}
	g.expected = kind
	return []protocol.DecisionRequest{{PlayerID: g.humanID, Prompt: prompt, Kind: kind}}, nil
}

// pass advances the bidding turn, exhausting the round at the dealer
func (g *euchre) pass(seat int) ([]protocol.DecisionRequest, error) {
	if g.CurrentTurn == g.Dealer {
		if !g.GoneOnce {
			g.GoneOnce = true
			g.BidState = Round2AnySuit
		} else {
			g.BidState = Redeal
		}
	}
	g.CurrentTurn = (g.CurrentTurn + 1) % deck.NumSeats
	g.queueAck(buildPassedMessage(seat))
	return g.flush(), nil
}

// declareKittySuit accepts the kitty suit as trump in round 1. The
// dealer takes the kitty into hand and must shed a card before play.
func (g *euchre) declareKittySuit(seat int) ([]protocol.DecisionRequest, error) {
	g.Trump = g.KittySuit
	g.DecidingSeat = seat
	if seat == g.Dealer {
		g.PickedUp = true
	} else {
		g.OrderedUp = true
	}
	g.queueAck(buildTrumpMessage(seat, *g.Kitty, g.Trump, seat == g.Dealer))

	g.BidState = Round1PickupDiscard
	g.Hands[g.Dealer].Add(*g.Kitty)
	g.Kitty = nil
	g.assignPoints()

	if g.Dealer == g.humanSeat {
		g.pendingDiscard = true
		return g.flush(), nil
	}

	idx := g.brain.Discard(g.Hands[g.Dealer])
	if _, err := g.Hands[g.Dealer].Remove(idx); err != nil {
		return nil, err
	}
	g.finishBidding()
	return g.flush(), nil
}

// declareSuit fixes trump in round 2; the kitty stays down
func (g *euchre) declareSuit(seat int, suit deck.Suit) ([]protocol.DecisionRequest, error) {
	g.Trump = suit
	g.DecidingSeat = seat
	g.OrderedUp = true
	g.queueAck(buildCalledMessage(seat, suit))
	g.finishBidding()
	return g.flush(), nil
}

func (g *euchre) finishBidding() {
	g.BidState = Decided
	g.stage = stagePlaying
	g.CurrentTurn = (g.Dealer + 1) % deck.NumSeats
	g.Trick.Clear()
	g.assignPoints()
}

// nextPlay resolves one step of trick play
func (g *euchre) nextPlay() ([]protocol.DecisionRequest, error) {
	if g.Trick.Complete() {
		return g.scoreTrick()
	}

	seat := g.CurrentTurn
	if seat == g.humanSeat {
		g.expected = protocol.PlayCardChoice
		return []protocol.DecisionRequest{{PlayerID: g.humanID, Prompt: playCardPrompt, Kind: protocol.PlayCardChoice}}, nil
	}

	idx := g.brain.PlayCard(g.Hands[seat], g.Trick, g.Trump)
	return g.playCard(seat, idx)
}

func (g *euchre) playCard(seat, idx int) ([]protocol.DecisionRequest, error) {
	card, err := g.Hands[seat].Remove(idx)
	if err != nil {
		return nil, err
	}
	if err := g.Trick.Play(seat, card); err != nil {
		return nil, err
	}
	// the lead suit may just have changed
	g.assignPoints()
	g.CurrentTurn = (seat + 1) % deck.NumSeats
	return g.flush(), nil
}

// scoreTrick awards the completed trick and, on the fifth, the hand
func (g *euchre) scoreTrick() ([]protocol.DecisionRequest, error) {
	winner, err := TrickWinner(g.Trick)
	if err != nil {
		return nil, err
	}
	g.TricksWon[Team(winner)]++
	g.CurrentTurn = winner
	g.Trick.Clear()
	g.assignPoints()
	g.queueAck(buildTrickWonMessage(winner))

	if g.TricksWon[0]+g.TricksWon[1] == NumTricks {
		team, points := HandAward(g.TricksWon, Team(g.DecidingSeat))
		g.Scores[team] += points
		g.queueAck(buildHandWonMessage(team))

		if g.Scores[team] >= g.winTarget {
			g.gameOver = true
			g.winningTeam = team
			g.queueAck(buildGameWonMessage(team))
			return g.flush(), nil
		}

		g.Dealer = (g.Dealer + 1) % deck.NumSeats
		if err := g.newHand(false); err != nil {
			return nil, err
		}
	}
	return g.flush(), nil
}

// queueAck records a message the human must acknowledge. All-AI
// games have no one to ask and skip acknowledgements entirely.
func (g *euchre) queueAck(msg string) {
	if g.humanSeat != NoSeat {
		g.ackQueue = append(g.ackQueue, msg)
	}
}

// flush emits the next gating request: queued acknowledgements
// first, then a pending dealer discard. With nothing pending the
// turn passes back to Next.
func (g *euchre) flush() []protocol.DecisionRequest {
	if len(g.ackQueue) > 0 {
		msg := g.ackQueue[0]
		g.ackQueue = g.ackQueue[1:]
		g.expected = protocol.Acknowledgement
		return []protocol.DecisionRequest{{PlayerID: g.humanID, Prompt: msg, Kind: protocol.Acknowledgement}}
	}
	if g.pendingDiscard {
		g.expected = protocol.DiscardChoice
		return []protocol.DecisionRequest{{PlayerID: g.humanID, Prompt: discardPrompt, Kind: protocol.DiscardChoice}}
	}
	g.expected = protocol.None
	return nil
}
