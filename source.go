package euchre

import (
	"errors"
	"sync"

	"github.com/eadyb/EuchreMobile/protocol"
)

// ErrAwaitCancelled is returned when a decision source is cancelled
// while a decision is pending. The engine does not retry; the hand
// in progress is aborted.
var ErrAwaitCancelled = errors.New("await cancelled while decision pending")

// DecisionSource resolves a decision request for the human seat.
// Decide may return immediately or suspend until an answer arrives;
// the engine's driving loop is agnostic to which.
type DecisionSource interface {
	Decide(protocol.DecisionRequest) (protocol.DecisionResponse, error)
}

// ChannelSource bridges the engine to an asynchronous host: Decide
// publishes the request on Requests and suspends until the host
// calls Respond. There is no timeout; the wait is unbounded unless
// Cancel is called.
type ChannelSource struct {
	requests  chan protocol.DecisionRequest
	responses chan protocol.DecisionResponse
	done      chan struct{}
	closeOnce sync.Once
	endOnce   sync.Once
}

// NewChannelSource constructs a ChannelSource
func NewChannelSource() *ChannelSource {
	return &ChannelSource{
		requests:  make(chan protocol.DecisionRequest),
		responses: make(chan protocol.DecisionResponse),
		done:      make(chan struct{}),
	}
}

func (s *ChannelSource) Decide(req protocol.DecisionRequest) (protocol.DecisionResponse, error) {
	select {
	case s.requests <- req:
	case <-s.done:
		return protocol.DecisionResponse{}, ErrAwaitCancelled
	}
	select {
	case resp := <-s.responses:
		return resp, nil
	case <-s.done:
		return protocol.DecisionResponse{}, ErrAwaitCancelled
	}
}

// Requests is the stream of pending decision requests for the host
func (s *ChannelSource) Requests() <-chan protocol.DecisionRequest {
	return s.requests
}

// Respond supplies the answer to the pending request
func (s *ChannelSource) Respond(resp protocol.DecisionResponse) {
	select {
	case s.responses <- resp:
	case <-s.done:
	}
}

// end closes the request stream. Only called once the driving loop
// has returned, so no Decide can be mid-send.
func (s *ChannelSource) end() {
	s.endOnce.Do(func() {
		close(s.requests)
	})
}

// Cancel fails any pending and future waits with ErrAwaitCancelled
func (s *ChannelSource) Cancel() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
