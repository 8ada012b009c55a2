package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/rodrigue/rangabot/internal/config"
)

// clearCredentials masks any credentials present in the test environment.
// Empty values count as unset for viper.
func clearCredentials(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		config.EnvTelegramToken, "RANGA_TELEGRAM_TOKEN",
		config.EnvGeminiAPIKey, "RANGA_GEMINI_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigMissingCredentials(t *testing.T) {
	testCases := []struct {
		name        string
		env         map[string]string
		wantMissing []string
		wantPresent []string
	}{
		{
			name:        "both credentials missing",
			wantMissing: []string{config.EnvTelegramToken, config.EnvGeminiAPIKey},
		},
		{
			name:        "only gemini key missing",
			env:         map[string]string{config.EnvTelegramToken: "123:abc"},
			wantMissing: []string{config.EnvGeminiAPIKey},
			wantPresent: []string{config.EnvTelegramToken},
		},
		{
			name:        "only telegram token missing",
			env:         map[string]string{config.EnvGeminiAPIKey: "key"},
			wantMissing: []string{config.EnvTelegramToken},
			wantPresent: []string{config.EnvGeminiAPIKey},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearCredentials(t)
			for name, value := range tc.env {
				t.Setenv(name, value)
			}

			_, err := config.LoadConfig("no-such-config.yaml")
			if !errors.Is(err, config.ErrMissingCredential) {
				t.Fatalf("LoadConfig error = %v, want ErrMissingCredential", err)
			}

			for _, name := range tc.wantMissing {
				if !strings.Contains(err.Error(), name) {
					t.Errorf("error %q does not name missing credential %s", err, name)
				}
			}
			for _, name := range tc.wantPresent {
				if strings.Contains(err.Error(), name) {
					t.Errorf("error %q names %s, which was set", err, name)
				}
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearCredentials(t)
	t.Setenv(config.EnvTelegramToken, "123:abc")
	t.Setenv(config.EnvGeminiAPIKey, "key")

	cfg, err := config.LoadConfig("no-such-config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Telegram.Token != "123:abc" {
		t.Errorf("telegram token = %q, want value from environment", cfg.Telegram.Token)
	}
	if cfg.Gemini.APIKey != "key" {
		t.Errorf("gemini api key = %q, want value from environment", cfg.Gemini.APIKey)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("logger level = %q, want %q", cfg.Logger.Level, "info")
	}
	if cfg.Gemini.ChatModel != "gemini-2.5-flash" {
		t.Errorf("chat model = %q, want default", cfg.Gemini.ChatModel)
	}
	if len(cfg.Gemini.ImageModels) != 3 {
		t.Errorf("image model candidates = %d, want 3", len(cfg.Gemini.ImageModels))
	}
	if cfg.Chat.MaxHistoryTurns != 10 {
		t.Errorf("max history turns = %d, want 10", cfg.Chat.MaxHistoryTurns)
	}
	if cfg.Messages.ChatError == "" {
		t.Error("chat error message default is empty")
	}

	task, ok := cfg.Scheduler.Tasks["session_stats"]
	if !ok {
		t.Fatal("scheduler defaults missing session_stats task")
	}
	if !task.Enabled || task.Schedule == "" {
		t.Errorf("session_stats task = %+v, want enabled with a schedule", task)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	clearCredentials(t)
	t.Setenv(config.EnvTelegramToken, "123:abc")
	t.Setenv(config.EnvGeminiAPIKey, "key")
	t.Setenv("RANGA_LOGGER_LEVEL", "debug")

	cfg, err := config.LoadConfig("no-such-config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("logger level = %q, want %q from environment", cfg.Logger.Level, "debug")
	}
}
