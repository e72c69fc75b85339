// ABOUTME: Lexicon-based sentiment scorer classifying text as positive/negative/neutral
// ABOUTME: Pure token count comparison against the polarity lexicons, no weighting

package sentiment

import (
	"github.com/chatbuddy/chatbuddy-go/internal/lexicon"
	"github.com/chatbuddy/chatbuddy-go/internal/textnorm"
)

// Label is the coarse sentiment classification of a piece of text.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Result holds the classification along with the raw lexicon counts.
type Result struct {
	Label    Label
	Score    int // PosCount - NegCount
	PosCount int
	NegCount int
}

// Score tokenizes text and compares polarity lexicon hit counts.
// More positive hits than negative classifies positive; the reverse
// classifies negative; everything else (including no hits) is neutral.
func Score(text string) Result {
	var pos, neg int
	for _, token := range textnorm.Tokens(text) {
		if _, ok := lexicon.Positive[token]; ok {
			pos++
		}
		if _, ok := lexicon.Negative[token]; ok {
			neg++
		}
	}

	r := Result{Label: Neutral, Score: pos - neg, PosCount: pos, NegCount: neg}
	switch {
	case pos > neg:
		r.Label = Positive
	case neg > pos:
		r.Label = Negative
	}
	return r
}
