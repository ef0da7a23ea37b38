package euchre

import (
	"math/rand"
	"testing"
	"time"

	"github.com/eadyb/EuchreMobile/game"
	utils "github.com/eadyb/EuchreMobile/internal"
	"github.com/eadyb/EuchreMobile/protocol"
)

func allAIGame(seed int64) game.Game {
	return game.NewEuchre(game.Opts{
		HumanSeat: game.NoSeat,
		Rand:      rand.New(rand.NewSource(seed)),
	})
}

func humanGame(seed int64) game.Game {
	return game.NewEuchre(game.Opts{
		HumanID: "human",
		Rand:    rand.New(rand.NewSource(seed)),
	})
}

func TestNewGameEngine(t *testing.T) {
	t.Run("requires a game", func(t *testing.T) {
		_, err := NewGameEngine(GameEngineOpts{})
		utils.AssertEqual(t, err, ErrNilGame)
	})

	t.Run("generates an ID when none is given", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{
			CreatorID: "creator",
			Game:      allAIGame(1),
		})
		utils.AssertNoError(t, err)
		if engine.ID() == "" {
			t.Error("expected a generated game ID")
		}
		utils.AssertEqual(t, engine.CreatorID(), "creator")
		utils.AssertEqual(t, engine.PlayState(), Idle)
	})

	t.Run("keeps the ID it is given", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{
			GameID: "some-game-id",
			Game:   allAIGame(1),
		})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, engine.ID(), "some-game-id")
	})
}

func TestGameEnginePlay(t *testing.T) {
	t.Run("four computer seats play to completion", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{Game: allAIGame(42)})
		utils.AssertNoError(t, err)

		utils.Within(t, 5*time.Second, func() {
			utils.AssertNoError(t, engine.Play())
		})
		utils.AssertEqual(t, engine.PlayState(), Finished)
		utils.AssertNoError(t, engine.Err())

		snap := engine.Snapshot()
		utils.AssertTrue(t, snap.GameOver)

		_, ok := engine.Game().Winner()
		utils.AssertTrue(t, ok)
	})

	t.Run("a scripted source drives a human seat to completion", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{
			Game:   humanGame(99),
			Source: scriptedSource{fn: playAnything},
		})
		utils.AssertNoError(t, err)

		utils.Within(t, 5*time.Second, func() {
			utils.AssertNoError(t, engine.Play())
		})
		utils.AssertEqual(t, engine.PlayState(), Finished)
	})

	t.Run("cannot be played twice", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{Game: allAIGame(1)})
		utils.AssertNoError(t, err)

		utils.Within(t, 5*time.Second, func() {
			utils.AssertNoError(t, engine.Play())
		})
		utils.AssertEqual(t, engine.Play(), ErrAlreadyPlaying)
	})

	t.Run("responding without a channel source fails", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{
			Game:   humanGame(1),
			Source: scriptedSource{fn: playAnything},
		})
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, engine.Respond(protocol.DecisionResponse{}), ErrNoChannelSource)
	})
}

func TestGameEngineChannelSource(t *testing.T) {
	t.Run("requests stream out and responses drive the game", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{Game: humanGame(5)})
		utils.AssertNoError(t, err)

		done := make(chan error, 1)
		go func() {
			done <- engine.Play()
		}()

		utils.Within(t, 5*time.Second, func() {
			for req := range engine.Requests() {
				resp, _ := playAnything(req)
				if err := engine.Respond(resp); err != nil {
					t.Errorf("unexpected error: %s", err.Error())
					return
				}
			}
		})

		utils.Within(t, time.Second, func() {
			utils.AssertNoError(t, <-done)
		})
		utils.AssertEqual(t, engine.PlayState(), Finished)
	})

	t.Run("cancelling aborts a pending decision", func(t *testing.T) {
		engine, err := NewGameEngine(GameEngineOpts{Game: humanGame(5)})
		utils.AssertNoError(t, err)

		done := make(chan error, 1)
		go func() {
			done <- engine.Play()
		}()

		utils.Within(t, 5*time.Second, func() {
			<-engine.Requests()
			engine.Cancel()
			utils.AssertEqual(t, <-done, ErrAwaitCancelled)
		})
		utils.AssertEqual(t, engine.PlayState(), Finished)
		utils.AssertEqual(t, engine.Err(), ErrAwaitCancelled)

		// the request stream is closed once play has ended
		utils.Within(t, time.Second, func() {
			_, open := <-engine.Requests()
			utils.AssertTrue(t, !open)
		})
	})
}

func TestGameEngineSpendBonus(t *testing.T) {
	engine, err := NewGameEngine(GameEngineOpts{Game: allAIGame(1)})
	utils.AssertNoError(t, err)

	utils.AssertNoError(t, engine.SpendBonus(2))
	utils.AssertEqual(t, engine.Snapshot().Scores[0], 2)
	utils.AssertErrored(t, engine.SpendBonus(-1))
}
