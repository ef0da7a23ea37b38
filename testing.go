package euchre

import (
	"github.com/eadyb/EuchreMobile/protocol"
)

type respondFunc func(protocol.DecisionRequest) (protocol.DecisionResponse, error)

// scriptedSource answers decision requests with a canned function,
// letting engine tests drive a human seat synchronously.
type scriptedSource struct {
	fn respondFunc
}

func (s scriptedSource) Decide(req protocol.DecisionRequest) (protocol.DecisionResponse, error) {
	return s.fn(req)
}

// playAnything acknowledges prompts, orders up whenever asked and
// plays the first card or discard index, which is enough to walk a
// human seat through to the end of a game.
func playAnything(req protocol.DecisionRequest) (protocol.DecisionResponse, error) {
	var value string
	switch req.Kind {
	case protocol.Acknowledgement:
		value = protocol.Acknowledged
	case protocol.OrderOrPickupChoice:
		value = protocol.Yes
	case protocol.SuitOrPassChoice:
		value = protocol.Pass
	default:
		value = "0"
	}
	return protocol.DecisionResponse{PlayerID: req.PlayerID, Value: value}, nil
}
