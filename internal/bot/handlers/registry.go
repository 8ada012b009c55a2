package handlers

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/rodrigue/rangabot/internal/personality"
)

// RegisteredHandler represents a command handler with its description.
// It encapsulates all information needed to register and document a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	MatchType   tgbot.MatchType
	Description string
}

// modeCommands maps the mode-switch command patterns to catalog modes.
// The set is fixed at compile time, which is what keeps UnknownMode
// unreachable through the command surface.
var modeCommands = map[string]string{
	"mode_homme":   personality.ModeHomme,
	"mode_femme":   personality.ModeFemme,
	"mode_anime":   personality.ModeAnime,
	"mode_coach":   personality.ModeCoach,
	"mode_default": personality.ModeDefault,
}

// modeDescriptions holds the command menu entries for the mode commands.
var modeDescriptions = map[string]string{
	"mode_homme":   "Assistant masculin direct",
	"mode_femme":   "Assistante féminine douce",
	"mode_anime":   "Personnalité anime girl kawaii",
	"mode_coach":   "Mode coach business",
	"mode_default": "Mode par défaut neutre",
}

// RegisterAllCommands initializes and returns a map of all available bot
// commands keyed by their slash form.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Message de bienvenue",
	}
	handlers["/help"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "help",
		Handler:     NewHelpHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Liste des commandes",
	}
	handlers["/about"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "about",
		Handler:     NewAboutHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Infos sur moi et mon créateur",
	}
	handlers["/image"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "image",
		Handler:     NewImageHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Générer une image",
	}
	handlers["/translate"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "translate",
		Handler:     NewTranslateHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
		Description: "Traduire du texte",
	}

	for pattern, mode := range modeCommands {
		handlers["/"+pattern] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     pattern,
			Handler:     NewModeHandler(deps, mode),
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Description: modeDescriptions[pattern],
		}
	}

	return handlers
}
