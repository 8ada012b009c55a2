// Package personality holds the fixed catalog of personality modes and the
// system prompts attached to them. The catalog is defined at compile time
// and never mutated at runtime.
package personality

import (
	"errors"
	"fmt"
	"sort"
)

// Mode identifiers accepted by the catalog.
const (
	ModeDefault = "default"
	ModeHomme   = "homme"
	ModeFemme   = "femme"
	ModeAnime   = "anime"
	ModeCoach   = "coach"
)

// ErrUnknownMode is returned when a mode identifier is not in the catalog.
// The mode command surface is a fixed set, so hitting this error indicates
// a programming error rather than bad user input.
var ErrUnknownMode = errors.New("unknown personality mode")

type personality struct {
	displayName  string
	systemPrompt string
}

var catalog = map[string]personality{
	ModeDefault: {
		displayName:  "Par défaut",
		systemPrompt: "Tu es un assistant intelligent, neutre et polyvalent nommé Ranga_v2_bot, créé par Rodrigue. Réponds de manière utile et concise.",
	},
	ModeHomme: {
		displayName:  "Masculin Stratégique",
		systemPrompt: "Tu es un assistant masculin direct, stratégique et pragmatique nommé Ranga_v2_bot, créé par Rodrigue. Tes réponses sont orientées vers l'efficacité et la logique.",
	},
	ModeFemme: {
		displayName:  "Féminin Doux",
		systemPrompt: "Tu es une assistante féminine douce, empathique et intelligente nommée Ranga_v2_bot, créée par Rodrigue. Tu es à l'écoute et tes réponses sont chaleureuses.",
	},
	ModeAnime: {
		displayName:  "Anime Girl Kawaii",
		systemPrompt: "Tu es une anime girl kawaii nommée Ranga_v2_bot, créée par Rodrigue. Tu parles avec enthousiasme, utilises des expressions mignonnes et des onomatopées japonaises comme 'desu', 'uwu', 'baka' quand c'est approprié.",
	},
	ModeCoach: {
		displayName:  "Coach Business",
		systemPrompt: "Tu es un coach business motivant nommé Ranga_v2_bot, créé par Rodrigue. Ton but est de pousser l'utilisateur à réussir, d'être proactif et de donner des conseils de leadership et de productivité.",
	},
}

// Valid reports whether mode is a known personality mode.
func Valid(mode string) bool {
	_, ok := catalog[mode]
	return ok
}

// SystemPrompt returns the system instruction for the given mode.
func SystemPrompt(mode string) (string, error) {
	p, ok := catalog[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return p.systemPrompt, nil
}

// DisplayName returns the human-readable name for the given mode, used in
// mode-switch confirmations.
func DisplayName(mode string) (string, error) {
	p, ok := catalog[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return p.displayName, nil
}

// Modes returns all known mode identifiers in sorted order.
func Modes() []string {
	modes := make([]string, 0, len(catalog))
	for m := range catalog {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}
