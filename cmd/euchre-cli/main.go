package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	euchre "github.com/eadyb/EuchreMobile"
	"github.com/eadyb/EuchreMobile/game"
	"github.com/eadyb/EuchreMobile/protocol"
)

// Plays a single game at the terminal: you are seat 0, the other
// three seats are computer players.
func main() {
	playerID := euchre.NewID()

	engine, err := euchre.NewGameEngine(euchre.GameEngineOpts{
		CreatorID: playerID,
		Game: game.NewEuchre(game.Opts{
			Dealer:  game.RandomDealer,
			HumanID: playerID,
		}),
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	done := make(chan error, 1)
	go func() {
		done <- engine.Play()
	}()

	scanner := bufio.NewScanner(os.Stdin)

	for req := range engine.Requests() {
		fmt.Println(req.Prompt)

		value := protocol.Acknowledged
		if req.Kind != protocol.Acknowledgement {
			fmt.Print("> ")
			if !scanner.Scan() {
				engine.Cancel()
				break
			}
			value = strings.TrimSpace(scanner.Text())
		}

		if err := engine.Respond(protocol.DecisionResponse{
			PlayerID: req.PlayerID,
			Value:    value,
		}); err != nil {
			log.Fatal(err.Error())
		}
	}

	if err := <-done; err != nil {
		log.Fatal(err.Error())
	}

	snapshot := engine.Snapshot()
	fmt.Printf("Final score: Team 0 %d, Team 1 %d\n", snapshot.Scores[0], snapshot.Scores[1])
}
