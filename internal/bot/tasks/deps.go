// Package tasks implements the bot's scheduled tasks and their registration.
package tasks

import (
	"log/slog"

	"github.com/rodrigue/rangabot/internal/config"
	"github.com/rodrigue/rangabot/internal/session"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Sessions *session.Store
	Config   *config.Config
}
