package imagegen_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rodrigue/rangabot/internal/gemini"
	"github.com/rodrigue/rangabot/internal/imagegen"
)

// fakeGenerator returns canned per-model results and records the calls it
// receives in order.
type fakeGenerator struct {
	results map[string]fakeResult
	calls   []string
	prompts []string
}

type fakeResult struct {
	data []byte
	err  error
}

func (f *fakeGenerator) GenerateImage(_ context.Context, model, prompt string) ([]byte, error) {
	f.calls = append(f.calls, model)
	f.prompts = append(f.prompts, prompt)
	res := f.results[model]
	return res.data, res.err
}

func TestGenerateFallback(t *testing.T) {
	t.Parallel()

	quotaErr := fmt.Errorf("%w: model overloaded", gemini.ErrQuotaExhausted)
	genericErr := errors.New("internal error")

	testCases := []struct {
		name       string
		candidates []string
		results    map[string]fakeResult
		wantData   []byte
		wantErr    bool
		wantCalls  []string
	}{
		{
			name:       "first candidate succeeds",
			candidates: []string{"model-a", "model-b", "model-c"},
			results: map[string]fakeResult{
				"model-a": {data: []byte("png-a")},
			},
			wantData:  []byte("png-a"),
			wantCalls: []string{"model-a"},
		},
		{
			name:       "quota exhaustion falls back, later candidates untouched",
			candidates: []string{"model-a", "model-b", "model-c"},
			results: map[string]fakeResult{
				"model-a": {err: quotaErr},
				"model-b": {data: []byte("png-b")},
			},
			wantData:  []byte("png-b"),
			wantCalls: []string{"model-a", "model-b"},
		},
		{
			name:       "generic failure advances the same way",
			candidates: []string{"model-a", "model-b"},
			results: map[string]fakeResult{
				"model-a": {err: genericErr},
				"model-b": {data: []byte("png-b")},
			},
			wantData:  []byte("png-b"),
			wantCalls: []string{"model-a", "model-b"},
		},
		{
			name:       "all candidates exhausted",
			candidates: []string{"model-a", "model-b", "model-c"},
			results: map[string]fakeResult{
				"model-a": {err: quotaErr},
				"model-b": {err: genericErr},
				"model-c": {err: quotaErr},
			},
			wantErr:   true,
			wantCalls: []string{"model-a", "model-b", "model-c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := &fakeGenerator{results: tc.results}
			pipeline := imagegen.NewPipeline(gen, tc.candidates, nil)

			data, err := pipeline.Generate(context.Background(), "a cat")

			if tc.wantErr {
				if !errors.Is(err, imagegen.ErrAllCandidatesFailed) {
					t.Fatalf("Generate error = %v, want ErrAllCandidatesFailed", err)
				}
				if data != nil {
					t.Errorf("Generate returned data %q alongside failure", data)
				}
			} else {
				if err != nil {
					t.Fatalf("Generate returned error: %v", err)
				}
				if string(data) != string(tc.wantData) {
					t.Errorf("Generate data = %q, want %q", data, tc.wantData)
				}
			}

			if len(gen.calls) != len(tc.wantCalls) {
				t.Fatalf("backend calls = %v, want %v", gen.calls, tc.wantCalls)
			}
			for i, model := range tc.wantCalls {
				if gen.calls[i] != model {
					t.Errorf("call %d hit %q, want %q", i, gen.calls[i], model)
				}
			}
		})
	}
}

func TestGenerateEnrichesPrompt(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{results: map[string]fakeResult{
		"model-a": {data: []byte("png")},
	}}
	pipeline := imagegen.NewPipeline(gen, []string{"model-a"}, nil)

	if _, err := pipeline.Generate(context.Background(), "un chat bleu"); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := "Generate a high-quality image of: un chat bleu"
	if len(gen.prompts) != 1 || gen.prompts[0] != want {
		t.Errorf("backend prompt = %q, want %q", gen.prompts, want)
	}
}
