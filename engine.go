package euchre

import (
	"errors"
	"sync"

	"github.com/eadyb/EuchreMobile/game"
	"github.com/eadyb/EuchreMobile/protocol"
	uuid "github.com/satori/go.uuid"
)

// PlayState represents the state of the current game
// Idle -> no game play (pre game)
// InProgress -> game in progress
// Finished -> game has ended or was aborted
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Finished
)

func (ps PlayState) String() string {
	if ps == 0 {
		return "idle"
	} else if ps == 1 {
		return "inProgress"
	} else if ps == 2 {
		return "finished"
	}
	return ""
}

var (
	ErrNilGame         = errors.New("game is nil")
	ErrNoChannelSource = errors.New("engine has no channel source")
	ErrAlreadyPlaying  = errors.New("game is already being played")
)

// NewID constructs a game or player ID
func NewID() string {
	return uuid.NewV4().String()
}

// GameEngine drives a single table to completion
type GameEngine interface {
	ID() string
	CreatorID() string
	Game() game.Game
	PlayState() PlayState
	Play() error
	Requests() <-chan protocol.DecisionRequest
	Respond(protocol.DecisionResponse) error
	Cancel()
	Snapshot() game.Snapshot
	SpendBonus(points int) error
}

// GameEngineOpts configures a new engine. A nil Source installs a
// ChannelSource reachable through Requests/Respond.
type GameEngineOpts struct {
	GameID    string
	CreatorID string
	Game      game.Game
	Source    DecisionSource
}

type gameEngine struct {
	id        string
	creatorID string
	game      game.Game
	source    DecisionSource
	channel   *ChannelSource

	// gameMu serialises game access between the driving loop and
	// snapshot queries; it is never held while awaiting a decision
	gameMu sync.Mutex

	mu        sync.RWMutex
	playState PlayState
	playErr   error
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}
	if opts.GameID == "" {
		opts.GameID = NewID()
	}

	engine := &gameEngine{
		id:        opts.GameID,
		creatorID: opts.CreatorID,
		game:      opts.Game,
		source:    opts.Source,
	}
	if engine.source == nil {
		engine.channel = NewChannelSource()
		engine.source = engine.channel
	} else if cs, ok := opts.Source.(*ChannelSource); ok {
		engine.channel = cs
	}

	return engine, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) CreatorID() string {
	return ge.creatorID
}

func (ge *gameEngine) Game() game.Game {
	return ge.game
}

func (ge *gameEngine) PlayState() PlayState {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playState
}

// Err reports the error, if any, that ended the game
func (ge *gameEngine) Err() error {
	ge.mu.RLock()
	defer ge.mu.RUnlock()
	return ge.playErr
}

// Requests exposes the pending decision request stream when the
// engine runs on a ChannelSource
func (ge *gameEngine) Requests() <-chan protocol.DecisionRequest {
	if ge.channel == nil {
		return nil
	}
	return ge.channel.Requests()
}

// Respond supplies the human's answer to the pending request
func (ge *gameEngine) Respond(resp protocol.DecisionResponse) error {
	if ge.channel == nil {
		return ErrNoChannelSource
	}
	ge.channel.Respond(resp)
	return nil
}

// Cancel aborts any pending decision wait
func (ge *gameEngine) Cancel() {
	if ge.channel != nil {
		ge.channel.Cancel()
	}
}

// Snapshot returns a read-only view of the table
func (ge *gameEngine) Snapshot() game.Snapshot {
	ge.gameMu.Lock()
	defer ge.gameMu.Unlock()
	return ge.game.Snapshot()
}

// SpendBonus adds host-granted bonus points to team 0's score
func (ge *gameEngine) SpendBonus(points int) error {
	ge.gameMu.Lock()
	defer ge.gameMu.Unlock()
	return ge.game.SpendBonus(points)
}

// Play runs the game to completion. It is the single driver of the
// game state: computer seats resolve synchronously inside the game,
// and whenever the human seat must act, Play suspends on the
// decision source until a response arrives. A cancelled source
// aborts the hand and surfaces ErrAwaitCancelled.
func (ge *gameEngine) Play() error {
	if ge.game == nil {
		return ge.finish(ErrNilGame)
	}

	ge.mu.Lock()
	if ge.playState != Idle {
		ge.mu.Unlock()
		return ErrAlreadyPlaying
	}
	ge.playState = InProgress
	ge.mu.Unlock()

	ge.gameMu.Lock()
	err := ge.game.Start()
	ge.gameMu.Unlock()
	if err != nil {
		return ge.finish(err)
	}

	var pending []protocol.DecisionRequest
	for {
		ge.gameMu.Lock()
		over := ge.game.GameOver()
		ge.gameMu.Unlock()
		if over && len(pending) == 0 {
			return ge.finish(nil)
		}

		if len(pending) == 0 {
			ge.gameMu.Lock()
			reqs, err := ge.game.Next()
			ge.gameMu.Unlock()
			if err != nil {
				return ge.finish(err)
			}
			pending = reqs
			continue
		}

		req := pending[0]
		pending = pending[1:]

		resp, err := ge.source.Decide(req)
		if err != nil {
			return ge.finish(err)
		}

		ge.gameMu.Lock()
		more, err := ge.game.ReceiveResponse(resp)
		ge.gameMu.Unlock()
		if err != nil {
			return ge.finish(err)
		}
		pending = append(pending, more...)
	}
}

func (ge *gameEngine) finish(err error) error {
	ge.mu.Lock()
	ge.playState = Finished
	ge.playErr = err
	ge.mu.Unlock()
	if ge.channel != nil {
		ge.channel.end()
	}
	return err
}
