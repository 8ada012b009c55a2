// Package chat builds conversational replies from a user's session state
// and the text generation backend.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rodrigue/rangabot/internal/personality"
	"github.com/rodrigue/rangabot/internal/session"
)

// Replier is the backend call the responder depends on.
type Replier interface {
	GenerateReply(ctx context.Context, systemInstruction string, turns []session.Turn) (string, error)
}

// Responder turns an incoming chat message into a reply, maintaining the
// user's bounded conversation history along the way.
type Responder struct {
	store   *session.Store
	backend Replier
	log     *slog.Logger
}

// NewResponder creates a responder over the given session store and backend.
func NewResponder(store *session.Store, backend Replier, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{
		store:   store,
		backend: backend,
		log:     logger.With("component", "chat_responder"),
	}
}

// Respond appends the user's message to their history, asks the backend for
// a reply under the session's personality, records the reply, and returns
// it. The user turn is committed before the backend call, so a failed call
// leaves the question in context without appending an assistant turn; the
// caller is expected to surface a fixed apology in that case.
func (r *Responder) Respond(ctx context.Context, userID int64, text string) (string, error) {
	sess := r.store.GetOrCreate(userID)

	systemPrompt, err := personality.SystemPrompt(sess.Mode)
	if err != nil {
		// Modes are validated when set, so this indicates a catalog bug.
		r.log.ErrorContext(ctx, "Session carries unknown mode", "user_id", userID, "mode", sess.Mode, "error", err)
		return "", err
	}

	r.store.AppendTurn(userID, session.Turn{Role: session.RoleUser, Content: text})
	history := r.store.History(userID)

	reply, err := r.backend.GenerateReply(ctx, systemPrompt, history)
	if err != nil {
		r.log.ErrorContext(ctx, "Reply generation failed", "user_id", userID, "mode", sess.Mode, "error", err)
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	r.store.AppendTurn(userID, session.Turn{Role: session.RoleAssistant, Content: reply})
	return reply, nil
}
