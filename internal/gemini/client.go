// Package gemini implements the integration with Google's Gemini API.
// It provides text generation for conversations and translations, and
// image generation for a single candidate model per call.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/rodrigue/rangabot/internal/config"
	"github.com/rodrigue/rangabot/internal/session"
)

// ErrQuotaExhausted marks a backend failure caused by exhausted generation
// quota. The image pipeline uses it to log the documented fallback trigger
// distinctly from other failures.
var ErrQuotaExhausted = errors.New("gemini quota exhausted")

// Client defines the AI operations used throughout the application.
type Client interface {
	// GenerateReply produces a conversational reply for the retained history,
	// with the personality's system instruction applied.
	GenerateReply(ctx context.Context, systemInstruction string, turns []session.Turn) (string, error)

	// GenerateText runs a one-shot prompt with no history or personality,
	// used for translations.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateImage asks a single model for an image and returns the raw
	// bytes of the first inline-data part. Exactly one attempt is made;
	// fallback across models is the caller's responsibility.
	GenerateImage(ctx context.Context, model, prompt string) ([]byte, error)
}

type sdkClient struct {
	genaiClient *genai.Client
	log         *slog.Logger
	chatModel   string
	temperature float32
	maxRetries  int
	retryDelay  time.Duration
}

// NewClient creates a new Gemini client with the provided configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig, log *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger := log.With("component", "gemini_client")
	logger.Info("Gemini client initialized", "chat_model", cfg.ChatModel, "image_models", cfg.ImageModels)
	return &sdkClient{
		genaiClient: gi,
		log:         logger,
		chatModel:   cfg.ChatModel,
		temperature: cfg.Temperature,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, nil
}

func (c *sdkClient) generateContentWithRetries(ctx context.Context, modelName string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	var err error

	for i := 0; i <= c.maxRetries; i++ {
		resp, err = c.genaiClient.Models.GenerateContent(ctx, modelName, contents, cfg)
		if err == nil {
			return resp, nil
		}

		c.log.WarnContext(ctx, "Gemini API call failed, checking for retry", "attempt", i+1, "max_retries", c.maxRetries, "error", err)

		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusInternalServerError || apiErr.Code == http.StatusServiceUnavailable) {
			if i < c.maxRetries {
				c.log.InfoContext(ctx, "Retrying Gemini API call", "delay", c.retryDelay, "code", apiErr.Code)
				time.Sleep(c.retryDelay)
				continue
			}
			return nil, fmt.Errorf("gemini API call failed after %d retries (code %d): %w", c.maxRetries, apiErr.Code, err)
		}

		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return nil, err
}

func (c *sdkClient) GenerateReply(ctx context.Context, systemInstruction string, turns []session.Turn) (string, error) {
	c.log.DebugContext(ctx, "Generating reply", "turn_count", len(turns))

	var contents []*genai.Content
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == session.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Content, role))
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: &c.temperature,
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}}
	}

	resp, err := c.generateContentWithRetries(ctx, c.chatModel, contents, cfg)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini reply generation failed", "error", err)
		return "", err
	}

	return c.extractTextFromResponse(ctx, resp)
}

func (c *sdkClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	c.log.DebugContext(ctx, "Generating one-shot text", "prompt_len", len(prompt))

	cfg := &genai.GenerateContentConfig{
		Temperature: &c.temperature,
	}

	resp, err := c.generateContentWithRetries(ctx, c.chatModel, genai.Text(prompt), cfg)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini text generation failed", "error", err)
		return "", err
	}

	return c.extractTextFromResponse(ctx, resp)
}

func (c *sdkClient) GenerateImage(ctx context.Context, model, prompt string) ([]byte, error) {
	c.log.DebugContext(ctx, "Generating image", "model", model, "prompt_len", len(prompt))

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE"},
	}

	// Single attempt per candidate model; the pipeline moves to the next
	// candidate on any failure.
	resp, err := c.genaiClient.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		if isQuotaExhausted(err) {
			return nil, fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
		return nil, fmt.Errorf("gemini image call failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("model %s returned no candidates", model)
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, fmt.Errorf("model %s returned no inline image data", model)
}

// isQuotaExhausted classifies a backend error as quota exhaustion. The
// string check on the status is confined to this adapter; everything above
// it relies on ErrQuotaExhausted.
func isQuotaExhausted(err error) bool {
	var apiErr *genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || strings.Contains(apiErr.Status, "RESOURCE_EXHAUSTED")
}

func (c *sdkClient) extractTextFromResponse(ctx context.Context, resp *genai.GenerateContentResponse) (string, error) {
	op := "gemini_operation"
	if pc, _, _, ok := runtime.Caller(1); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			if len(parts) >= 2 {
				op = parts[len(parts)-1]
			}
		}
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		reasonMsg := fmt.Sprintf("%v", resp.PromptFeedback.BlockReason)
		if resp.PromptFeedback.BlockReasonMessage != "" {
			reasonMsg = resp.PromptFeedback.BlockReasonMessage
		}
		c.log.ErrorContext(ctx, "Gemini request blocked", "operation", op, "reason", reasonMsg)
		return "", fmt.Errorf("%s blocked by safety filter: %s", op, reasonMsg)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		finishReason := "unknown"
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != genai.FinishReasonUnspecified {
			finishReason = fmt.Sprintf("%v", resp.Candidates[0].FinishReason)
		}
		c.log.WarnContext(ctx, "Gemini response missing candidates or content", "operation", op, "finish_reason", finishReason)
		return "", fmt.Errorf("%s returned no content, finish reason: %s", op, finishReason)
	}

	text := resp.Text()
	if text == "" {
		c.log.WarnContext(ctx, "Gemini response text is empty", "operation", op)
		return "", fmt.Errorf("%s returned empty text", op)
	}

	return text, nil
}
