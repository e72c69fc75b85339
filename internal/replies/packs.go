// ABOUTME: Optional YAML reply packs merged over the builtin pools
// ABOUTME: Parses and validates pack files; non-empty pack pools replace builtins

package replies

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chatbuddy/chatbuddy-go/internal/intent"
)

// Pack is the YAML shape of a reply pack. Every field is optional; a
// present, non-empty pool replaces the corresponding builtin pool.
type Pack struct {
	Greeting  []string `yaml:"greeting"`
	Farewell  []string `yaml:"farewell"`
	Thanks    []string `yaml:"thanks"`
	HowAreYou []string `yaml:"how_are_you"`
	Help      []string `yaml:"help"`

	Fallback []string `yaml:"fallback"`
	Sadness  []string `yaml:"sadness"`
	Anger    []string `yaml:"anger"`
	Negative []string `yaml:"negative"`
	Delight  []string `yaml:"delight"`
	Positive []string `yaml:"positive"`
	Exit     []string `yaml:"exit"`
	Nudge    []string `yaml:"nudge"`
}

// LoadPack reads and validates a single YAML pack file.
func LoadPack(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reply pack %s: %w", path, err)
	}

	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse reply pack %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validate reply pack %s: %w", path, err)
	}
	return &p, nil
}

// LoadPacks reads every YAML pack in dir and applies them to a copy of
// the builtin set, in file name order. Later packs win on overlap.
func LoadPacks(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read reply pack directory %s: %w", dir, err)
	}

	set := Builtin()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := LoadPack(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		p.applyTo(set)
	}
	return set, nil
}

// Validate rejects pools containing blank phrasings.
func (p *Pack) Validate() error {
	pools := map[string][]string{
		"greeting": p.Greeting, "farewell": p.Farewell, "thanks": p.Thanks,
		"how_are_you": p.HowAreYou, "help": p.Help, "fallback": p.Fallback,
		"sadness": p.Sadness, "anger": p.Anger, "negative": p.Negative,
		"delight": p.Delight, "positive": p.Positive, "exit": p.Exit,
		"nudge": p.Nudge,
	}
	for name, pool := range pools {
		for _, phrase := range pool {
			if strings.TrimSpace(phrase) == "" {
				return fmt.Errorf("pool %q contains a blank phrasing", name)
			}
		}
	}
	return nil
}

func (p *Pack) applyTo(set *Set) {
	replaceIntent := func(i intent.Intent, pool []string) {
		if len(pool) > 0 {
			set.Intents[i] = pool
		}
	}
	replaceIntent(intent.Greeting, p.Greeting)
	replaceIntent(intent.Farewell, p.Farewell)
	replaceIntent(intent.Thanks, p.Thanks)
	replaceIntent(intent.HowAreYou, p.HowAreYou)
	replaceIntent(intent.Help, p.Help)

	replace := func(dst *[]string, pool []string) {
		if len(pool) > 0 {
			*dst = pool
		}
	}
	replace(&set.Fallback, p.Fallback)
	replace(&set.Sadness, p.Sadness)
	replace(&set.Anger, p.Anger)
	replace(&set.Negative, p.Negative)
	replace(&set.Delight, p.Delight)
	replace(&set.Positive, p.Positive)
	replace(&set.Farewell, p.Exit)
	replace(&set.Nudge, p.Nudge)
}
