package handlers

import (
	"log/slog"

	"github.com/rodrigue/rangabot/internal/chat"
	"github.com/rodrigue/rangabot/internal/config"
	"github.com/rodrigue/rangabot/internal/gemini"
	"github.com/rodrigue/rangabot/internal/imagegen"
	"github.com/rodrigue/rangabot/internal/session"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Config    *config.Config
	Sessions  *session.Store
	Gemini    gemini.Client
	Images    *imagegen.Pipeline
	Responder *chat.Responder
}
