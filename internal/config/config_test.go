// ABOUTME: Tests for settings loading, merging, and effective-value helpers
// ABOUTME: Covers unset-vs-zero distinction for pointer fields

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chatbuddy/chatbuddy-go/internal/kb"
)

func f64(v float64) *float64 { return &v }

func TestMerge_ProjectOverridesGlobal(t *testing.T) {
	t.Parallel()

	global := &Settings{
		BotName:        "GlobalBot",
		KBPath:         "/global/kb.json",
		MatchThreshold: f64(0.5),
	}
	project := &Settings{
		BotName:        "ProjectBot",
		MatchThreshold: f64(0.8),
		NoEmotion:      true,
	}

	got := merge(global, project)
	if got.BotName != "ProjectBot" {
		t.Errorf("BotName = %q; want project value", got.BotName)
	}
	if got.KBPath != "/global/kb.json" {
		t.Errorf("KBPath = %q; want global value kept", got.KBPath)
	}
	if got.MatchThreshold == nil || *got.MatchThreshold != 0.8 {
		t.Errorf("MatchThreshold = %v; want 0.8", got.MatchThreshold)
	}
	if !got.NoEmotion {
		t.Error("NoEmotion = false; want project value")
	}
}

func TestMerge_NilInputs(t *testing.T) {
	t.Parallel()

	if got := merge(nil, nil); got == nil {
		t.Fatal("merge(nil, nil) returned nil")
	}
	global := &Settings{BotName: "GlobalBot"}
	if got := merge(global, nil); got.BotName != "GlobalBot" {
		t.Errorf("BotName = %q; want global value", got.BotName)
	}
}

func TestMerge_ExplicitZeroThresholdWins(t *testing.T) {
	t.Parallel()

	global := &Settings{MatchThreshold: f64(0.7)}
	project := &Settings{MatchThreshold: f64(0)}

	got := merge(global, project)
	if got.MatchThreshold == nil || *got.MatchThreshold != 0 {
		t.Errorf("MatchThreshold = %v; want explicit 0 from project", got.MatchThreshold)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	content := `{"bot_name": "TestBot", "match_threshold": 0.75, "seed": 42}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := loadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BotName != "TestBot" {
		t.Errorf("BotName = %q; want %q", got.BotName, "TestBot")
	}
	if got.MatchThreshold == nil || *got.MatchThreshold != 0.75 {
		t.Errorf("MatchThreshold = %v; want 0.75", got.MatchThreshold)
	}
	if got.Seed == nil || *got.Seed != 42 {
		t.Errorf("Seed = %v; want 42", got.Seed)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := loadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(err) {
		t.Errorf("err = %v; want not-exist", err)
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := loadFile(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestEffectiveBotName(t *testing.T) {
	t.Parallel()

	var nilSettings *Settings
	if got := nilSettings.EffectiveBotName(); got != DefaultBotName {
		t.Errorf("nil settings name = %q; want default", got)
	}
	if got := (&Settings{}).EffectiveBotName(); got != DefaultBotName {
		t.Errorf("empty settings name = %q; want default", got)
	}
	if got := (&Settings{BotName: "Buddy"}).EffectiveBotName(); got != "Buddy" {
		t.Errorf("name = %q; want configured value", got)
	}
}

func TestEffectiveThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    *Settings
		want float64
	}{
		{"nil settings", nil, kb.DefaultThreshold},
		{"unset", &Settings{}, kb.DefaultThreshold},
		{"valid", &Settings{MatchThreshold: f64(0.8)}, 0.8},
		{"zero rejected", &Settings{MatchThreshold: f64(0)}, kb.DefaultThreshold},
		{"above one rejected", &Settings{MatchThreshold: f64(1.5)}, kb.DefaultThreshold},
		{"negative rejected", &Settings{MatchThreshold: f64(-0.2)}, kb.DefaultThreshold},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.s.EffectiveThreshold(); got != tt.want {
				t.Errorf("EffectiveThreshold() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveKBPath(t *testing.T) {
	t.Parallel()

	if got := (&Settings{KBPath: "/tmp/kb.json"}).EffectiveKBPath(); got != "/tmp/kb.json" {
		t.Errorf("KBPath = %q; want configured value", got)
	}
	if got := (&Settings{}).EffectiveKBPath(); got != GlobalKBFile() {
		t.Errorf("KBPath = %q; want global default", got)
	}
}
