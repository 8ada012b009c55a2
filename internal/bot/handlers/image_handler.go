package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewImageHandler returns a handler for the /image command. The command is
// the explicit way to request an image; the default message handler reaches
// the same pipeline through keyword detection.
func NewImageHandler(deps HandlerDeps) bot.HandlerFunc {
	return imageHandler{deps}.Handle
}

type imageHandler struct {
	deps HandlerDeps
}

func (h imageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "image")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Image handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	prompt := commandArgs(update.Message.Text)
	if prompt == "" {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.ImageUsage}); err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	log.InfoContext(ctx, "Handling /image command", "chat_id", chatID, "user_id", update.Message.From.ID, "prompt_len", len(prompt))
	GenerateAndSendImage(ctx, b, h.deps, chatID, prompt)
}
