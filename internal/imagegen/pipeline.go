// Package imagegen implements image generation with sequential fallback
// across an ordered list of candidate models.
package imagegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rodrigue/rangabot/internal/gemini"
)

// ErrAllCandidatesFailed is returned when every candidate model has been
// tried without producing an image.
var ErrAllCandidatesFailed = errors.New("all image model candidates failed")

// promptPrefix is prepended to the user's description before it is sent to
// the backend.
const promptPrefix = "Generate a high-quality image of: "

// Generator is the single-model generation call the pipeline drives.
type Generator interface {
	GenerateImage(ctx context.Context, model, prompt string) ([]byte, error)
}

// Pipeline tries an ordered, fixed list of candidate models until one
// produces an image. Candidates are tried serially, one attempt each;
// request volume is low and the API usage cost-conscious, so there is no
// parallelism and no retry budget beyond the list itself.
type Pipeline struct {
	gen        Generator
	candidates []string
	log        *slog.Logger
}

// NewPipeline creates a pipeline over the given candidate models, tried in
// order with earlier entries preferred.
func NewPipeline(gen Generator, candidates []string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		gen:        gen,
		candidates: candidates,
		log:        logger.With("component", "image_pipeline"),
	}
}

// Generate produces image bytes for the prompt, stopping at the first
// candidate that succeeds. Quota exhaustion is the documented fallback
// trigger, but any failure advances to the next candidate; the distinction
// only changes what gets logged. Returns ErrAllCandidatesFailed once the
// list is exhausted.
func (p *Pipeline) Generate(ctx context.Context, prompt string) ([]byte, error) {
	enriched := promptPrefix + prompt

	for _, model := range p.candidates {
		p.log.InfoContext(ctx, "Attempting image generation", "model", model, "prompt_len", len(prompt))

		data, err := p.gen.GenerateImage(ctx, model, enriched)
		if err == nil {
			p.log.InfoContext(ctx, "Image generated", "model", model, "bytes", len(data))
			return data, nil
		}

		if errors.Is(err, gemini.ErrQuotaExhausted) {
			p.log.WarnContext(ctx, "Image model quota exhausted, falling back to next candidate", "model", model, "error", err)
		} else {
			p.log.ErrorContext(ctx, "Image generation failed, falling back to next candidate", "model", model, "error", err)
		}
	}

	p.log.ErrorContext(ctx, "Image generation exhausted all candidates", "candidates", len(p.candidates))
	return nil, fmt.Errorf("%w: tried %d models", ErrAllCandidatesFailed, len(p.candidates))
}
