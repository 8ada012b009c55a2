package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/rodrigue/rangabot/internal/classify"
)

// NewMessageHandler returns the default handler for free-text messages.
// Image keyword detection runs first; a message classified as an image
// request goes to the pipeline and is never appended to conversation
// history. Everything else becomes a chat turn.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	return messageHandler{deps}.Handle
}

type messageHandler struct {
	deps HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Text == "" {
		log.DebugContext(ctx, "Ignoring update with nil message, empty text, or nil sender", "update_id", update.ID)
		return
	}

	// Commands are dispatched by their registered handlers; unknown
	// commands are ignored rather than fed to the model.
	if strings.HasPrefix(msg.Text, "/") {
		log.DebugContext(ctx, "Ignoring unregistered command", "chat_id", msg.Chat.ID)
		return
	}

	chatID := msg.Chat.ID
	userID := msg.From.ID

	res := classify.Classify(msg.Text)
	if res.Kind == classify.KindImage {
		log.InfoContext(ctx, "Message classified as image request", "chat_id", chatID, "user_id", userID, "prompt_len", len(res.Prompt))
		GenerateAndSendImage(ctx, b, h.deps, chatID, res.Prompt)
		return
	}

	log.InfoContext(ctx, "Handling chat message", "chat_id", chatID, "user_id", userID)

	_, _ = b.SendChatAction(ctx, &bot.SendChatActionParams{ChatID: chatID, Action: models.ChatActionTyping})

	aiCtx, cancel := context.WithTimeout(ctx, aiProcessingTimeout)
	defer cancel()

	reply, err := h.deps.Responder.Respond(aiCtx, userID, res.Text)
	if err != nil {
		// The user's turn stays in history; only the apology goes out.
		if _, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: h.deps.Config.Messages.ChatError}); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send chat error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: reply}); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}
