// ABOUTME: Knowledge base JSON loader with per-entry validation
// ABOUTME: File/shape errors are fatal to the caller; bad entries are skipped and counted

package kb

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chatbuddy/chatbuddy-go/internal/log"
)

// rawEntry uses pointers so a missing or null field is distinguishable
// from an empty string during validation.
type rawEntry struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// Load reads a JSON array of question/answer objects from path.
// Entries missing either field (or with a null value) are skipped; the
// returned count says how many were dropped. A missing file, malformed
// JSON, or a non-array top level is an error for the caller to treat as
// fatal at startup.
func Load(path string) ([]Entry, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading knowledge base: %w", err)
	}

	var raw []rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(raw))
	skipped := 0
	for i, r := range raw {
		if r.Question == nil || r.Answer == nil {
			log.Warn("kb: skipping entry %d in %s: missing question or answer", i, path)
			skipped++
			continue
		}
		entries = append(entries, Entry{Question: *r.Question, Answer: *r.Answer})
	}

	log.Debug("kb: loaded %d entries from %s (%d skipped)", len(entries), path, skipped)
	return entries, skipped, nil
}
