package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAboutHandler returns a handler for the /about command.
func NewAboutHandler(deps HandlerDeps) bot.HandlerFunc {
	return aboutHandler{deps}.Handle
}

type aboutHandler struct {
	deps HandlerDeps
}

func (h aboutHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "about")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "About handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /about command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: h.deps.Config.Messages.About})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send about message", "error", err, "chat_id", update.Message.Chat.ID)
	}
}
