// Package config provides configuration loading and validation for the bot.
// Values come from defaults, an optional YAML file, and RANGA_* environment
// variables. The two credentials (TELEGRAM_TOKEN, GEMINI_API_KEY) must be
// present in the environment; startup fails otherwise.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-telegram/bot/models"
	"github.com/spf13/viper"
)

// Config defines the application configuration for all components.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the Telegram credentials and runtime bot identity.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`

	// BotInfo is populated at startup from GetMe, not from configuration.
	BotInfo *models.User `mapstructure:"-"`
}

// GeminiConfig holds the Gemini API credentials and model selection.
// ImageModels is the ordered candidate list for image generation; earlier
// entries are preferred.
type GeminiConfig struct {
	APIKey            string   `mapstructure:"api_key"             validate:"required"`
	ChatModel         string   `mapstructure:"chat_model"          validate:"required"`
	ImageModels       []string `mapstructure:"image_models"        validate:"required,min=1,dive,required"`
	Temperature       float32  `mapstructure:"temperature"         validate:"min=0,max=2"`
	MaxRetries        int      `mapstructure:"max_retries"         validate:"min=0,max=10"`
	RetryDelaySeconds int      `mapstructure:"retry_delay_seconds" validate:"min=1,max=60"`
}

// ChatConfig controls the conversation behavior.
type ChatConfig struct {
	MaxHistoryTurns int `mapstructure:"max_history_turns" validate:"min=1,max=100"`
}

// MessagesConfig collects all user-facing message templates. Defaults are in
// French, the bot's primary language.
type MessagesConfig struct {
	Welcome        string `mapstructure:"welcome"         validate:"required"`
	Help           string `mapstructure:"help"            validate:"required"`
	About          string `mapstructure:"about"           validate:"required"`
	ModeActivated  string `mapstructure:"mode_activated"  validate:"required"`
	ChatError      string `mapstructure:"chat_error"      validate:"required"`
	ImageProgress  string `mapstructure:"image_progress"  validate:"required"`
	ImageError     string `mapstructure:"image_error"     validate:"required"`
	ImageUsage     string `mapstructure:"image_usage"     validate:"required"`
	ImageCaption   string `mapstructure:"image_caption"   validate:"required"`
	TranslateUsage string `mapstructure:"translate_usage" validate:"required"`
	TranslateError string `mapstructure:"translate_error" validate:"required"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a single scheduled task and sets its cron expression
// (six fields, seconds first).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Environment variable names for the required credentials.
const (
	EnvTelegramToken = "TELEGRAM_TOKEN"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
)

// ErrMissingCredential indicates that a required credential is absent from
// the environment. Fatal at startup.
var ErrMissingCredential = errors.New("missing required credential")

// LoadConfig loads configuration from defaults, the YAML file at path (if it
// exists), and environment variables, then validates the result. It returns
// an error naming every missing credential so the operator can fix them all
// at once.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RANGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credentials keep their historical unprefixed names.
	if err := v.BindEnv("telegram.token", "RANGA_TELEGRAM_TOKEN", EnvTelegramToken); err != nil {
		return nil, fmt.Errorf("failed to bind telegram token env: %w", err)
	}
	if err := v.BindEnv("gemini.api_key", "RANGA_GEMINI_API_KEY", EnvGeminiAPIKey); err != nil {
		return nil, fmt.Errorf("failed to bind gemini api key env: %w", err)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		// Missing config file is fine, defaults plus environment apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	var missing []string
	if cfg.Telegram.Token == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if cfg.Gemini.APIKey == "" {
		missing = append(missing, EnvGeminiAPIKey)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s not set in the environment", ErrMissingCredential, strings.Join(missing, ", "))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.json", false)

	v.SetDefault("gemini.chat_model", "gemini-2.5-flash")
	v.SetDefault("gemini.image_models", []string{
		"gemini-2.5-flash-image",
		"gemini-3-pro-image-preview",
		"gemini-2.0-flash",
	})
	v.SetDefault("gemini.temperature", 1.0)
	v.SetDefault("gemini.max_retries", 2)
	v.SetDefault("gemini.retry_delay_seconds", 2)

	v.SetDefault("chat.max_history_turns", 10)

	v.SetDefault("messages.welcome",
		"🤖✨ Salut ! Moi c'est RANGA 2.0, votre assistante IA personnelle.\n\n"+
			"J'ai été créée par Rodrigue pour vous accompagner moralement et vous aider dans vos petites tâches du quotidien.\n\n"+
			"Prêt(e) à commencer l'aventure avec moi ? 🚀")
	v.SetDefault("messages.help",
		"Voici mes commandes :\n"+
			"/start - Message de bienvenue\n"+
			"/help - Liste des commandes\n"+
			"/about - Infos sur moi et mon créateur\n"+
			"/image [description] - Générer une image\n"+
			"/translate [langue] [texte] - Traduire du texte\n\n"+
			"Changer ma personnalité :\n"+
			"/mode_homme - Assistant masculin direct\n"+
			"/mode_femme - Assistante féminine douce\n"+
			"/mode_anime - Personnalité anime girl kawaii\n"+
			"/mode_coach - Mode coach business\n"+
			"/mode_default - Mode par défaut neutre")
	v.SetDefault("messages.about",
		"Ranga_v2_bot est un assistant IA avancé propulsé par Gemini.\n"+
			"Il a été conçu pour être polyvalent, capable de discuter, traduire et générer des images.\n\n"+
			"Créateur : Rodrigue")
	v.SetDefault("messages.mode_activated", "Mode activé : %s")
	v.SetDefault("messages.chat_error", "Oups, mon cerveau a eu un petit court-circuit. Réessaie !")
	v.SetDefault("messages.image_progress", "Génération de l'image en cours... 🎨")
	v.SetDefault("messages.image_error", "Désolé, je n'ai pas pu générer l'image. Mes quotas de génération sont peut-être épuisés ou le service est indisponible.")
	v.SetDefault("messages.image_usage", "Usage: /image [description]")
	v.SetDefault("messages.image_caption", "Voici votre image : %s")
	v.SetDefault("messages.translate_usage", "Usage: /translate [langue] [texte]")
	v.SetDefault("messages.translate_error", "Désolé, une erreur est survenue lors de la traduction.")

	v.SetDefault("scheduler.tasks.session_stats.enabled", true)
	v.SetDefault("scheduler.tasks.session_stats.schedule", "0 0 * * * *")
}
