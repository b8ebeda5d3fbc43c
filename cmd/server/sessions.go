package main

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"minesolver/internal/game"
)

var ErrNotFound = errors.New("session not found")

type gameSession struct {
	Id        string
	State     *game.GameState
	StartedAt time.Time
	EndedAt   *time.Time
}

func (s *gameSession) finish() {
	if s.EndedAt == nil {
		now := time.Now().UTC()
		s.EndedAt = &now
	}
}

// sessionStore keeps live games in memory. Sessions do not survive a
// restart; the mutex also serializes moves within one session, which
// is all the consistency a turn-based game needs.
type sessionStore struct {
	mu       sync.Mutex
	nextId   int
	sessions map[string]*gameSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*gameSession)}
}

func (s *sessionStore) Create(state *game.GameState) *gameSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextId++
	session := &gameSession{
		Id:        strconv.Itoa(s.nextId),
		State:     state,
		StartedAt: time.Now().UTC(),
	}
	s.sessions[session.Id] = session
	return session
}

func (s *sessionStore) Get(id string) (*gameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Update runs fn while holding the store lock, so concurrent moves on
// the same session cannot interleave.
func (s *sessionStore) Update(id string, fn func(*gameSession) error) (*gameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, fn(session)
}
