package classify_test

import (
	"testing"

	"github.com/rodrigue/rangabot/internal/classify"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		wantKind   classify.Kind
		wantPrompt string
		wantText   string
	}{
		{
			name:       "english keyword removed and trimmed",
			input:      "draw a blue cat",
			wantKind:   classify.KindImage,
			wantPrompt: "a blue cat",
		},
		{
			name:     "no keyword is chat",
			input:    "what time is it",
			wantKind: classify.KindChat,
			wantText: "what time is it",
		},
		{
			name:       "keyword only falls back to default prompt",
			input:      "generate",
			wantKind:   classify.KindImage,
			wantPrompt: classify.DefaultPrompt,
		},
		{
			name:       "french keyword",
			input:      "Dessine un chat bleu",
			wantKind:   classify.KindImage,
			wantPrompt: "un chat bleu",
		},
		{
			name:       "multi word french keyword",
			input:      "génère une image d'un robot",
			wantKind:   classify.KindImage,
			wantPrompt: "d'un robot",
		},
		{
			name:       "match is case insensitive, removal keeps original casing",
			input:      "DRAW the Eiffel Tower",
			wantKind:   classify.KindImage,
			wantPrompt: "the Eiffel Tower",
		},
		{
			name:       "photo de keyword",
			input:      "photo de la tour Eiffel",
			wantKind:   classify.KindImage,
			wantPrompt: "la tour Eiffel",
		},
		{
			name:       "substring match has no word boundary",
			input:      "withdraw 50 dollars",
			wantKind:   classify.KindImage,
			wantPrompt: "with 50 dollars",
		},
		{
			name:     "empty text is chat",
			input:    "",
			wantKind: classify.KindChat,
			wantText: "",
		},
		{
			name:     "french chat message",
			input:    "quelle heure est-il",
			wantKind: classify.KindChat,
			wantText: "quelle heure est-il",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res := classify.Classify(tc.input)
			if res.Kind != tc.wantKind {
				t.Fatalf("Classify(%q).Kind = %v, want %v", tc.input, res.Kind, tc.wantKind)
			}
			if res.Kind == classify.KindImage {
				if res.Prompt != tc.wantPrompt {
					t.Errorf("Classify(%q).Prompt = %q, want %q", tc.input, res.Prompt, tc.wantPrompt)
				}
			} else {
				if res.Text != tc.wantText {
					t.Errorf("Classify(%q).Text = %q, want %q", tc.input, res.Text, tc.wantText)
				}
			}
		})
	}
}
