// Package session implements the in-memory per-user conversation state:
// the active personality mode and a bounded history of conversation turns.
// All state lives for the process lifetime only.
package session

import (
	"log/slog"
	"sync"

	"github.com/rodrigue/rangabot/internal/personality"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message in a conversation, tagged with its author role.
type Turn struct {
	Role    Role
	Content string
}

// Session is a snapshot of one user's conversation state. History is a copy;
// mutating it does not affect the store.
type Session struct {
	Mode    string
	History []Turn
}

type userState struct {
	mode    string
	history []Turn
}

// Store holds per-user sessions, keyed by Telegram user ID. Sessions are
// created lazily with the default mode and an empty history. All access goes
// through the store so concurrent handlers never observe a half-built
// session or hold a reference into the internal map.
type Store struct {
	mu         sync.Mutex
	users      map[int64]*userState
	maxHistory int
	log        *slog.Logger
}

// NewStore creates an empty session store. maxHistory bounds the number of
// retained turns per user; values below 1 fall back to 10.
func NewStore(logger *slog.Logger, maxHistory int) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if maxHistory < 1 {
		maxHistory = 10
	}
	return &Store{
		users:      make(map[int64]*userState),
		maxHistory: maxHistory,
		log:        logger.With("component", "session_store"),
	}
}

// locked returns the state for userID, creating it on first contact.
// Callers must hold s.mu.
func (s *Store) locked(userID int64) *userState {
	u, ok := s.users[userID]
	if !ok {
		u = &userState{mode: personality.ModeDefault}
		s.users[userID] = u
		s.log.Debug("Created session", "user_id", userID, "mode", u.mode)
	}
	return u
}

// GetOrCreate returns a snapshot of the user's session, creating it with the
// default mode and empty history if the user is new. It never fails.
func (s *Store) GetOrCreate(userID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.locked(userID)
	history := make([]Turn, len(u.history))
	copy(history, u.history)
	return Session{Mode: u.mode, History: history}
}

// SetMode switches the user's personality mode and unconditionally clears
// the conversation history, so no context leaks across personalities.
// Returns personality.ErrUnknownMode if mode is not in the catalog; the
// command surface is fixed, so callers are expected to have validated it.
func (s *Store) SetMode(userID int64, mode string) error {
	if !personality.Valid(mode) {
		s.log.Error("Rejected unknown personality mode", "user_id", userID, "mode", mode)
		return personality.ErrUnknownMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.locked(userID)
	u.mode = mode
	u.history = nil
	s.log.Info("Switched personality mode", "user_id", userID, "mode", mode)
	return nil
}

// AppendTurn appends a turn to the user's history, then truncates to the
// most recent maxHistory turns. Append happens before truncation so the
// newest turn is always retained.
func (s *Store) AppendTurn(userID int64, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.locked(userID)
	u.history = append(u.history, turn)
	if len(u.history) > s.maxHistory {
		u.history = u.history[len(u.history)-s.maxHistory:]
	}
}

// History returns a copy of the user's retained turns in chronological order.
func (s *Store) History(userID int64) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.locked(userID)
	history := make([]Turn, len(u.history))
	copy(history, u.history)
	return history
}

// Stats reports the number of active sessions and the total retained turns
// across all users.
func (s *Store) Stats() (sessions, turns int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		turns += len(u.history)
	}
	return len(s.users), turns
}
