package euchre

import (
	"testing"

	utils "github.com/eadyb/EuchreMobile/internal"
)

func TestInMemoryGameStore(t *testing.T) {
	t.Run("finds an added game", func(t *testing.T) {
		store := NewInMemoryGameStore()
		engine, err := NewGameEngine(GameEngineOpts{
			GameID: "some-game-id",
			Game:   allAIGame(1),
		})
		utils.AssertNoError(t, err)

		utils.AssertNoError(t, store.AddGame(engine))

		found := store.FindGame("some-game-id")
		if found == nil {
			t.Fatal("expected to find the game")
		}
		utils.AssertEqual(t, found.ID(), "some-game-id")
	})

	t.Run("unknown IDs come back nil", func(t *testing.T) {
		store := NewInMemoryGameStore()
		if found := store.FindGame("no-such-game"); found != nil {
			t.Errorf("expected nil, got %v", found)
		}
	})

	t.Run("refuses a duplicate ID", func(t *testing.T) {
		store := NewInMemoryGameStore()
		engine, err := NewGameEngine(GameEngineOpts{
			GameID: "some-game-id",
			Game:   allAIGame(1),
		})
		utils.AssertNoError(t, err)

		utils.AssertNoError(t, store.AddGame(engine))
		utils.AssertEqual(t, store.AddGame(engine), ErrGameAlreadyExists)
	})

	t.Run("removed games are gone", func(t *testing.T) {
		store := NewInMemoryGameStore()
		engine, err := NewGameEngine(GameEngineOpts{
			GameID: "some-game-id",
			Game:   allAIGame(1),
		})
		utils.AssertNoError(t, err)

		utils.AssertNoError(t, store.AddGame(engine))
		store.RemoveGame("some-game-id")

		if found := store.FindGame("some-game-id"); found != nil {
			t.Error("expected the game to be removed")
		}
	})
}
