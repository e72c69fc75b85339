// ABOUTME: Best-candidate knowledge base matching over token overlap and string similarity
// ABOUTME: Scores are max(Jaccard, sequence ratio); first entry wins score ties

package kb

import "github.com/chatbuddy/chatbuddy-go/internal/textnorm"

// DefaultThreshold is the minimum score a candidate must reach to match.
// It mirrors the original overlap cutoff and is tunable via configuration.
const DefaultThreshold = 0.6

// Match is a successful lookup: the winning entry and its final score.
type Match struct {
	Entry Entry
	Score float64
	Index int
}

// candidate caches the normalized form of a stored question so repeated
// queries do not re-normalize the whole knowledge base.
type candidate struct {
	entry      Entry
	normalized string
	tokens     map[string]struct{}
}

// Matcher answers free-text queries against a fixed set of entries.
// It is read-only after construction and safe for concurrent use.
type Matcher struct {
	candidates []candidate
	questions  []string // normalized, for fuzzy suggestions
	threshold  float64
}

// NewMatcher builds a matcher over entries with the given score threshold.
// A zero or negative threshold falls back to DefaultThreshold.
func NewMatcher(entries []Entry, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	m := &Matcher{
		candidates: make([]candidate, len(entries)),
		questions:  make([]string, len(entries)),
		threshold:  threshold,
	}
	for i, e := range entries {
		normalized := textnorm.Normalize(e.Question)
		m.candidates[i] = candidate{
			entry:      e,
			normalized: normalized,
			tokens:     textnorm.TokenSet(e.Question),
		}
		m.questions[i] = normalized
	}
	return m
}

// Threshold returns the active score threshold.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Len returns the number of loaded entries.
func (m *Matcher) Len() int { return len(m.candidates) }

// Match returns the entry with the highest score against query, provided
// that score reaches the threshold. Each candidate scores the maximum of
// its token-set Jaccard overlap and its string similarity ratio with the
// normalized query. Ties keep the earliest entry. Absence of a match is a
// normal outcome (ok=false), never an error.
func (m *Matcher) Match(query string) (Match, bool) {
	normalized := textnorm.Normalize(query)
	queryTokens := textnorm.TokenSet(query)

	best := Match{Index: -1}
	for i, c := range m.candidates {
		score := jaccard(queryTokens, c.tokens)
		if ratio := Ratio(normalized, c.normalized); ratio > score {
			score = ratio
		}
		// strictly greater keeps the first-seen entry on ties
		if score > best.Score {
			best = Match{Entry: c.entry, Score: score, Index: i}
		}
	}

	if best.Index < 0 || best.Score < m.threshold {
		return Match{Index: -1}, false
	}
	return best, true
}

// jaccard computes |a∩b| / |a∪b| over token sets; 0 when the union is empty.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for t := range a {
		if _, ok := b[t]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
