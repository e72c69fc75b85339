// ABOUTME: Tests for reply pools, selectors, and YAML pack merging
// ABOUTME: Covers deterministic selection, empty-pool guards, and pack validation

package replies

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chatbuddy/chatbuddy-go/internal/intent"
)

func TestBuiltin_AllPoolsNonEmpty(t *testing.T) {
	t.Parallel()

	s := Builtin()
	for i := intent.Greeting; i <= intent.Help; i++ {
		if len(s.Intents[i]) == 0 {
			t.Errorf("intent %v has an empty pool", i)
		}
	}
	pools := map[string][]string{
		"fallback": s.Fallback, "sadness": s.Sadness, "anger": s.Anger,
		"negative": s.Negative, "delight": s.Delight, "positive": s.Positive,
		"farewell": s.Farewell, "nudge": s.Nudge,
	}
	for name, pool := range pools {
		if len(pool) == 0 {
			t.Errorf("pool %q is empty", name)
		}
		for _, phrase := range pool {
			if phrase == "" {
				t.Errorf("pool %q contains a blank phrasing", name)
			}
		}
	}
}

func TestFirstSelector_Deterministic(t *testing.T) {
	t.Parallel()

	s := Builtin()
	first := s.Intent(intent.Greeting, FirstSelector{})
	for i := 0; i < 5; i++ {
		if got := s.Intent(intent.Greeting, FirstSelector{}); got != first {
			t.Fatalf("selection changed: %q vs %q", got, first)
		}
	}
	if first != s.Intents[intent.Greeting][0] {
		t.Errorf("FirstSelector picked %q; want pool head", first)
	}
}

func TestRandomSelector_SeededReproducible(t *testing.T) {
	t.Parallel()

	a := NewRandomSelector(42)
	b := NewRandomSelector(42)
	for i := 0; i < 20; i++ {
		if got, want := a.Pick(7), b.Pick(7); got != want {
			t.Fatalf("pick %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestRandomSelector_InBounds(t *testing.T) {
	t.Parallel()

	sel := NewRandomSelector(1)
	for i := 0; i < 100; i++ {
		if got := sel.Pick(3); got < 0 || got >= 3 {
			t.Fatalf("Pick(3) = %d; out of bounds", got)
		}
	}
	if got := sel.Pick(0); got != 0 {
		t.Errorf("Pick(0) = %d; want 0", got)
	}
}

func TestPick_EmptyPoolGuard(t *testing.T) {
	t.Parallel()

	s := &Set{} // every pool empty
	if got := s.PickFallback(FirstSelector{}); got == "" {
		t.Error("empty pool must still produce a non-empty reply")
	}
	if got := s.Intent(intent.Greeting, FirstSelector{}); got == "" {
		t.Error("unknown intent must still produce a non-empty reply")
	}
}

func TestLoadPacks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pack := `greeting:
  - "Custom hello."
fallback:
  - "Custom fallback one."
  - "Custom fallback two."
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(pack), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := LoadPacks(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Intent(intent.Greeting, FirstSelector{}); got != "Custom hello." {
		t.Errorf("greeting = %q; want the pack phrasing", got)
	}
	// Untouched pools keep their builtin content.
	if got := s.PickNudge(FirstSelector{}); got != Builtin().Nudge[0] {
		t.Errorf("nudge = %q; want builtin phrasing", got)
	}
}

func TestLoadPack_RejectsBlankPhrasing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("thanks:\n  - \"   \"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadPack(path); err == nil {
		t.Error("expected a validation error for blank phrasing")
	}
}
