// ABOUTME: First-match-wins intent lookup over the ordered pattern table
// ABOUTME: Matching is pure; reply selection lives in the replies package

package intent

import "github.com/chatbuddy/chatbuddy-go/internal/textnorm"

// Match tests the normalized input against every rule in table order and
// returns the first matching intent. ok is false when nothing matches.
// Matching never fails; absence of a match is a normal outcome.
func Match(text string) (Intent, bool) {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return 0, false
	}
	for _, r := range rules {
		if r.pattern.MatchString(normalized) {
			return r.intent, true
		}
	}
	return 0, false
}
