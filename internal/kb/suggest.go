// ABOUTME: Fuzzy "did you mean" suggestions over stored questions
// ABOUTME: Advisory only; never influences Match results or scores

package kb

import "github.com/sahilm/fuzzy"

// Suggest returns up to n stored questions that fuzzily resemble query,
// best first. It is used when a lookup misses the threshold to offer the
// user nearby questions; the output never feeds back into matching.
func (m *Matcher) Suggest(query string, n int) []string {
	if n <= 0 || len(m.questions) == 0 {
		return nil
	}
	results := fuzzy.Find(query, m.questions)
	if len(results) > n {
		results = results[:n]
	}
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, m.candidates[r.Index].entry.Question)
	}
	return out
}
