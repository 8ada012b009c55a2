package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/rodrigue/rangabot/internal/personality"
)

// NewModeHandler returns a handler that switches the sender's session to the
// given personality mode. One handler instance is registered per mode
// command, so the mode is fixed at registration time.
func NewModeHandler(deps HandlerDeps, mode string) bot.HandlerFunc {
	return modeHandler{deps: deps, mode: mode}.Handle
}

type modeHandler struct {
	deps HandlerDeps
	mode string
}

func (h modeHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "mode", "mode", h.mode)

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Mode handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	log.InfoContext(ctx, "Handling mode switch", "chat_id", chatID, "user_id", userID)

	// Switching the mode clears the conversation history for the user.
	if err := h.deps.Sessions.SetMode(userID, h.mode); err != nil {
		// Only reachable if the registry maps a command to a mode that is
		// not in the catalog.
		log.ErrorContext(ctx, "Mode switch rejected", "error", err, "user_id", userID)
		return
	}

	displayName, err := personality.DisplayName(h.mode)
	if err != nil {
		log.ErrorContext(ctx, "No display name for mode", "error", err)
		return
	}

	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf(h.deps.Config.Messages.ModeActivated, displayName),
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send mode confirmation", "error", err, "chat_id", chatID)
	}
}
