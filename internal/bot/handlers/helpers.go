// Package handlers contains the Telegram command and message handlers,
// along with their registration logic.
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	aiProcessingTimeout    = 2 * time.Minute
	imageProcessingTimeout = 3 * time.Minute
	captionMaxRunes        = 100
)

// commandArgs returns the text following the command token, trimmed.
// Handles the "/cmd@botname args" form as well.
func commandArgs(text string) string {
	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// truncateRunes caps s at max runes, so multi-byte characters in French
// prompts are never split.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// GenerateAndSendImage runs the image pipeline for prompt and delivers the
// result to chatID as a photo captioned with the prompt. On failure it sends
// the configured image error message. The image bytes are handed straight to
// the transport and not retained.
func GenerateAndSendImage(ctx context.Context, b *bot.Bot, deps HandlerDeps, chatID int64, prompt string) {
	log := deps.Logger.With("handler", "image")

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: deps.Config.Messages.ImageProgress}); err != nil {
		log.ErrorContext(ctx, "Failed to send progress message", "error", err, "chat_id", chatID)
	}

	genCtx, cancel := context.WithTimeout(ctx, imageProcessingTimeout)
	defer cancel()

	data, err := deps.Images.Generate(genCtx, prompt)
	if err != nil {
		log.ErrorContext(ctx, "Image generation failed", "error", err, "chat_id", chatID)
		if _, sendErr := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: deps.Config.Messages.ImageError}); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send image error message", "error", sendErr, "chat_id", chatID)
		}
		return
	}

	caption := fmt.Sprintf(deps.Config.Messages.ImageCaption, truncateRunes(prompt, captionMaxRunes))
	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileUpload{Filename: "image.png", Data: bytes.NewReader(data)},
		Caption: caption,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send photo", "error", err, "chat_id", chatID)
		return
	}

	log.InfoContext(ctx, "Delivered generated image", "chat_id", chatID, "bytes", len(data))
}
