// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chatbuddy/chatbuddy-go/internal/kb"
)

// DefaultBotName is the display name used when settings leave it blank.
const DefaultBotName = "ChatBuddy"

// Settings holds the merged configuration. Pointer fields distinguish
// "unset" from an explicit zero so merging can tell them apart.
type Settings struct {
	BotName        string   `json:"bot_name,omitempty"`
	KBPath         string   `json:"kb_path,omitempty"`
	MatchThreshold *float64 `json:"match_threshold,omitempty"`
	ReplyPacksDir  string   `json:"reply_packs_dir,omitempty"`
	NoEmotion      bool     `json:"no_emotion,omitempty"`
	Seed           *int64   `json:"seed,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalSettingsFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global settings: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Set project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.BotName != "" {
		result.BotName = project.BotName
	}
	if project.KBPath != "" {
		result.KBPath = project.KBPath
	}
	if project.MatchThreshold != nil {
		result.MatchThreshold = project.MatchThreshold
	}
	if project.ReplyPacksDir != "" {
		result.ReplyPacksDir = project.ReplyPacksDir
	}
	if project.NoEmotion {
		result.NoEmotion = true
	}
	if project.Seed != nil {
		result.Seed = project.Seed
	}

	return &result
}

// EffectiveBotName returns the configured display name or the default.
func (s *Settings) EffectiveBotName() string {
	if s != nil && s.BotName != "" {
		return s.BotName
	}
	return DefaultBotName
}

// EffectiveThreshold returns the configured match threshold or the
// matcher default. Values outside (0, 1] are rejected in favor of the
// default rather than silently producing a matcher that accepts
// everything or nothing.
func (s *Settings) EffectiveThreshold() float64 {
	if s != nil && s.MatchThreshold != nil {
		t := *s.MatchThreshold
		if t > 0 && t <= 1 {
			return t
		}
	}
	return kb.DefaultThreshold
}

// EffectiveKBPath returns the configured knowledge base path or the
// global default location.
func (s *Settings) EffectiveKBPath() string {
	if s != nil && s.KBPath != "" {
		return s.KBPath
	}
	return GlobalKBFile()
}
