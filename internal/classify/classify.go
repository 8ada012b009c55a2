// Package classify decides whether an incoming text message is an image
// generation request and, if so, derives the image prompt from it.
package classify

import (
	"regexp"
	"strings"
)

// Kind is the outcome of classifying a message.
type Kind int

const (
	// KindChat means the message is a regular conversation turn.
	KindChat Kind = iota
	// KindImage means the message asks for an image to be generated.
	KindImage
)

// DefaultPrompt is substituted when keyword removal leaves nothing of the
// original message, so the image pipeline always receives a usable prompt.
const DefaultPrompt = "quelque chose de magnifique"

// imageKeywords are the trigger phrases scanned for, French first since
// that is the bot's primary language. Matching is a case-insensitive
// substring check with no word-boundary requirement.
var imageKeywords = []string{
	"crée une image",
	"créé une image",
	"génère une image",
	"dessine",
	"fais une image",
	"fais moi une image",
	"crée moi une image",
	"generate",
	"draw",
	"picture of",
	"image de",
	"photo de",
}

// keywordPatterns strips keyword occurrences from the original-case text.
var keywordPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(imageKeywords))
	for i, kw := range imageKeywords {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))
	}
	return patterns
}()

// Result is the classification of one incoming message.
type Result struct {
	Kind Kind
	// Prompt is the cleaned image prompt. Set only for KindImage.
	Prompt string
	// Text is the original message. Set only for KindChat.
	Text string
}

// Classify inspects raw text and returns either an image request with its
// cleaned prompt or a chat turn carrying the original text. Image detection
// takes priority: a message matching any keyword is never treated as chat.
func Classify(text string) Result {
	lower := strings.ToLower(text)

	matched := false
	for _, kw := range imageKeywords {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return Result{Kind: KindChat, Text: text}
	}

	prompt := text
	for _, p := range keywordPatterns {
		prompt = p.ReplaceAllString(prompt, "")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return Result{Kind: KindImage, Prompt: prompt}
}
