package euchre

import (
	"testing"
	"time"

	utils "github.com/eadyb/EuchreMobile/internal"
	"github.com/eadyb/EuchreMobile/protocol"
)

func TestChannelSource(t *testing.T) {
	t.Run("decide suspends until a response arrives", func(t *testing.T) {
		source := NewChannelSource()

		type result struct {
			resp protocol.DecisionResponse
			err  error
		}
		got := make(chan result, 1)
		go func() {
			resp, err := source.Decide(protocol.DecisionRequest{
				PlayerID: "human",
				Prompt:   "Play a card",
				Kind:     protocol.PlayCardChoice,
			})
			got <- result{resp, err}
		}()

		utils.Within(t, time.Second, func() {
			req := <-source.Requests()
			utils.AssertEqual(t, req.Kind, protocol.PlayCardChoice)

			source.Respond(protocol.DecisionResponse{PlayerID: "human", Value: "0"})

			res := <-got
			utils.AssertNoError(t, res.err)
			utils.AssertEqual(t, res.resp.Value, "0")
		})
	})

	t.Run("cancel fails a pending decide", func(t *testing.T) {
		source := NewChannelSource()

		errs := make(chan error, 1)
		go func() {
			_, err := source.Decide(protocol.DecisionRequest{})
			errs <- err
		}()

		utils.Within(t, time.Second, func() {
			<-source.Requests()
			source.Cancel()
			utils.AssertEqual(t, <-errs, ErrAwaitCancelled)
		})
	})

	t.Run("cancel fails decides that never found a reader", func(t *testing.T) {
		source := NewChannelSource()
		source.Cancel()

		utils.Within(t, time.Second, func() {
			_, err := source.Decide(protocol.DecisionRequest{})
			utils.AssertEqual(t, err, ErrAwaitCancelled)
		})
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		source := NewChannelSource()
		source.Cancel()
		source.Cancel()
	})

	t.Run("respond after cancel does not block", func(t *testing.T) {
		source := NewChannelSource()
		source.Cancel()

		utils.Within(t, time.Second, func() {
			source.Respond(protocol.DecisionResponse{})
		})
	})
}
