package personality_test

import (
	"errors"
	"testing"

	"github.com/rodrigue/rangabot/internal/personality"
)

func TestCatalogComplete(t *testing.T) {
	t.Parallel()

	modes := personality.Modes()
	if len(modes) != 5 {
		t.Fatalf("Modes() returned %d modes, want 5", len(modes))
	}

	for _, mode := range modes {
		if !personality.Valid(mode) {
			t.Errorf("Valid(%q) = false for a listed mode", mode)
		}
		prompt, err := personality.SystemPrompt(mode)
		if err != nil {
			t.Errorf("SystemPrompt(%q) returned error: %v", mode, err)
		}
		if prompt == "" {
			t.Errorf("SystemPrompt(%q) is empty", mode)
		}
		name, err := personality.DisplayName(mode)
		if err != nil {
			t.Errorf("DisplayName(%q) returned error: %v", mode, err)
		}
		if name == "" {
			t.Errorf("DisplayName(%q) is empty", mode)
		}
	}
}

func TestUnknownMode(t *testing.T) {
	t.Parallel()

	if personality.Valid("pirate") {
		t.Error("Valid(\"pirate\") = true, want false")
	}
	if _, err := personality.SystemPrompt("pirate"); !errors.Is(err, personality.ErrUnknownMode) {
		t.Errorf("SystemPrompt(unknown) error = %v, want ErrUnknownMode", err)
	}
	if _, err := personality.DisplayName("pirate"); !errors.Is(err, personality.ErrUnknownMode) {
		t.Errorf("DisplayName(unknown) error = %v, want ErrUnknownMode", err)
	}
}
