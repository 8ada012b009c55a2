package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewTranslateHandler returns a handler for the /translate command. It runs
// a one-shot prompt through the text backend; translations do not touch the
// sender's conversation history.
func NewTranslateHandler(deps HandlerDeps) bot.HandlerFunc {
	return translateHandler{deps}.Handle
}

type translateHandler struct {
	deps HandlerDeps
}

func (h translateHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "translate")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Translate handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	args := strings.Fields(commandArgs(update.Message.Text))
	if len(args) < 2 {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.TranslateUsage}); err != nil {
			log.ErrorContext(ctx, "Failed to send usage message", "error", err, "chat_id", chatID)
		}
		return
	}

	targetLang := args[0]
	text := strings.Join(args[1:], " ")
	log.InfoContext(ctx, "Handling /translate command", "chat_id", chatID, "user_id", update.Message.From.ID, "target_lang", targetLang)

	prompt := fmt.Sprintf("Traduis le texte suivant en %s : '%s'. Donne uniquement la traduction.", targetLang, text)

	genCtx, cancel := context.WithTimeout(ctx, aiProcessingTimeout)
	defer cancel()

	translation, err := h.deps.Gemini.GenerateText(genCtx, prompt)
	if err != nil {
		log.ErrorContext(ctx, "Translation failed", "error", err, "chat_id", chatID)
		if _, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.TranslateError}); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send translation error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: translation}); err != nil {
		log.ErrorContext(ctx, "Failed to send translation", "error", err, "chat_id", chatID)
	}
}
