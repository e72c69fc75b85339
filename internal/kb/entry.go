// ABOUTME: Knowledge base entry type shared by the loader and matcher
// ABOUTME: Entries are immutable once loaded; slice order fixes tie-breaks

package kb

// Entry is one stored question/answer pair. Entries are never mutated after
// loading; their position in the loaded slice decides match tie-breaks.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
