// ABOUTME: Tests for the polarity count comparison and label assignment
// ABOUTME: Covers pure-positive, pure-negative, mixed, and lexicon-free input

package sentiment

import "testing"

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLabel Label
		wantScore int
	}{
		{"pure positive", "what a great and wonderful day", Positive, 2},
		{"pure negative", "this is terrible and awful", Negative, -2},
		{"no lexicon words", "the sky is up there", Neutral, 0},
		{"balanced counts", "good but bad", Neutral, 0},
		{"negative outweighs", "nice but terrible and awful", Negative, -1},
		{"empty input", "", Neutral, 0},
		{"punctuated positive", "I love it!!! Awesome.", Positive, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Score(tt.input)
			if got.Label != tt.wantLabel {
				t.Errorf("Score(%q).Label = %q; want %q", tt.input, got.Label, tt.wantLabel)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score(%q).Score = %d; want %d", tt.input, got.Score, tt.wantScore)
			}
		})
	}
}

func TestScore_Counts(t *testing.T) {
	t.Parallel()

	got := Score("happy happy bad")
	if got.PosCount != 2 {
		t.Errorf("PosCount = %d; want 2", got.PosCount)
	}
	if got.NegCount != 1 {
		t.Errorf("NegCount = %d; want 1", got.NegCount)
	}
}
