package euchre

import (
	"errors"
	"sync"
)

var ErrGameAlreadyExists = errors.New("game already exists")

// GameStore holds the engines for the games in play
type GameStore interface {
	FindGame(gameID string) GameEngine
	AddGame(engine GameEngine) error
	RemoveGame(gameID string)
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	engine, ok := s.games[gameID]
	if !ok {
		return nil
	}
	return engine
}

func (s *InMemoryGameStore) AddGame(engine GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.games[engine.ID()]; exists {
		return ErrGameAlreadyExists
	}
	s.games[engine.ID()] = engine
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, gameID)
}
