// ABOUTME: CLI entry point for chatbuddy
// ABOUTME: Parses flags, loads settings and the knowledge base, dispatches to a mode

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/chatbuddy/chatbuddy-go/internal/termfix"

	"golang.org/x/term"

	"github.com/chatbuddy/chatbuddy-go/internal/config"
	"github.com/chatbuddy/chatbuddy-go/internal/kb"
	cblog "github.com/chatbuddy/chatbuddy-go/internal/log"
	"github.com/chatbuddy/chatbuddy-go/internal/mode/chat"
	"github.com/chatbuddy/chatbuddy-go/internal/mode/repl"
	"github.com/chatbuddy/chatbuddy-go/internal/replies"
	"github.com/chatbuddy/chatbuddy-go/internal/responder"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("chatbuddy %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs the full initialization sequence and dispatches to the selected mode.
func run(args cliArgs) error {
	if args.verbose {
		cblog.SetLevel(cblog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	set, err := loadReplies(args, cfg)
	if err != nil {
		return err
	}

	matcher, err := loadKB(args, cfg)
	if err != nil {
		return err
	}

	var sel replies.Selector
	if args.seed != 0 {
		sel = replies.NewRandomSelector(args.seed)
	} else if cfg.Seed != nil {
		sel = replies.NewRandomSelector(*cfg.Seed)
	}

	bot := responder.New(responder.Options{
		KB:        matcher,
		Replies:   set,
		Selector:  sel,
		NoEmotion: args.noEmotion || cfg.NoEmotion,
	})

	botName := cfg.EffectiveBotName()
	if args.name != "" {
		botName = args.name
	}

	if args.prompt != "" {
		repl.RunOnce(repl.Config{BotName: botName, Annotate: true}, repl.Deps{Bot: bot, Out: os.Stdout}, args.prompt)
		return nil
	}

	if args.plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		return repl.Run(context.Background(),
			repl.Config{BotName: botName, Banner: true, Annotate: true},
			repl.Deps{Bot: bot, In: os.Stdin, Out: os.Stdout})
	}

	return chat.Run(chat.Config{BotName: botName, Annotate: true}, bot)
}

// loadReplies builds the reply set from a pack directory when one is
// configured, falling back to the builtin pools.
func loadReplies(args cliArgs, cfg *config.Settings) (*replies.Set, error) {
	dir := cfg.ReplyPacksDir
	if args.replies != "" {
		dir = args.replies
	}
	if dir == "" {
		return replies.Builtin(), nil
	}
	set, err := replies.LoadPacks(dir)
	if err != nil {
		return nil, fmt.Errorf("loading reply packs: %w", err)
	}
	return set, nil
}

// loadKB builds the matcher from the configured knowledge base. A
// missing file at the default location just disables KB lookups; an
// explicitly configured path that cannot be loaded is fatal.
func loadKB(args cliArgs, cfg *config.Settings) (*kb.Matcher, error) {
	path := cfg.EffectiveKBPath()
	explicit := args.kbPath != "" || cfg.KBPath != ""
	if args.kbPath != "" {
		path = args.kbPath
	}

	entries, skipped, err := kb.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			cblog.Info("no knowledge base at %s, continuing without one", path)
			return nil, nil
		}
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	if skipped > 0 {
		cblog.Warn("knowledge base: skipped %d malformed entries", skipped)
	}

	threshold := cfg.EffectiveThreshold()
	if args.threshold != 0 {
		if args.threshold < 0 || args.threshold > 1 {
			return nil, fmt.Errorf("threshold %v out of range (0, 1]", args.threshold)
		}
		threshold = args.threshold
	}

	cblog.Debug("knowledge base: %d entries, threshold %.2f", len(entries), threshold)
	return kb.NewMatcher(entries, threshold), nil
}
