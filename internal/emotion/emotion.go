// ABOUTME: Keyword-set emotion detection with a fixed category priority order
// ABOUTME: First category with a token hit wins; DetectAll reports every hit count

package emotion

import (
	"fmt"

	"github.com/chatbuddy/chatbuddy-go/internal/lexicon"
	"github.com/chatbuddy/chatbuddy-go/internal/textnorm"
)

// Category is a coarse emotion class detected from keyword membership.
type Category int

const (
	Joy Category = iota
	Sadness
	Anger
	Fear
	Surprise
	Love
)

// String returns the human-readable name of the category.
func (c Category) String() string {
	switch c {
	case Joy:
		return "joy"
	case Sadness:
		return "sadness"
	case Anger:
		return "anger"
	case Fear:
		return "fear"
	case Surprise:
		return "surprise"
	case Love:
		return "love"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// priority fixes the tie-break order when input matches several categories.
// Joy first, love last; Detect returns the earliest category with a hit.
var priority = []struct {
	category Category
	keywords map[string]struct{}
}{
	{Joy, lexicon.Joy},
	{Sadness, lexicon.Sadness},
	{Anger, lexicon.Anger},
	{Fear, lexicon.Fear},
	{Surprise, lexicon.Surprise},
	{Love, lexicon.Love},
}

// Detect returns the first category, in priority order, whose keyword set
// contains at least one token of text. ok is false when nothing matches.
func Detect(text string) (Category, bool) {
	set := textnorm.TokenSet(text)
	if len(set) == 0 {
		return 0, false
	}
	for _, p := range priority {
		for token := range set {
			if _, ok := p.keywords[token]; ok {
				return p.category, true
			}
		}
	}
	return 0, false
}

// DetectAll returns the number of distinct matching tokens per category.
// Categories with no hits are absent from the map.
func DetectAll(text string) map[Category]int {
	set := textnorm.TokenSet(text)
	found := make(map[Category]int)
	for _, p := range priority {
		for token := range set {
			if _, ok := p.keywords[token]; ok {
				found[p.category]++
			}
		}
	}
	return found
}
