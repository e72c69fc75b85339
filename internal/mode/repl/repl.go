// ABOUTME: Plain line-oriented conversation loop for pipes and dumb terminals
// ABOUTME: Reads one line per turn, prints the reply plus optional annotation lines

package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chatbuddy/chatbuddy-go/internal/responder"
	"github.com/chatbuddy/chatbuddy-go/internal/sentiment"
)

// Config configures a REPL session.
type Config struct {
	BotName  string
	Banner   bool // print the greeting banner before the first prompt
	Annotate bool // print sentiment/emotion lines under each reply
}

// Deps provides the REPL's collaborators.
type Deps struct {
	Bot *responder.Responder
	In  io.Reader
	Out io.Writer
}

// Run reads lines from In until EOF, an exit word, or ctx cancellation,
// replying to each on Out. A nil ctx error return means the conversation
// ended normally.
func Run(ctx context.Context, cfg Config, deps Deps) error {
	if cfg.BotName == "" {
		cfg.BotName = "ChatBuddy"
	}

	if cfg.Banner {
		fmt.Fprintf(deps.Out, "%s here! Ask me something, tell me how you feel, or say 'bye' to leave.\n", cfg.BotName)
	}

	scanner := bufio.NewScanner(deps.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(deps.Out, "You: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			fmt.Fprintln(deps.Out)
			return nil
		}

		reply := deps.Bot.Respond(scanner.Text())
		writeReply(deps.Out, cfg, reply)
		if reply.Done {
			return nil
		}
	}
}

// RunOnce answers a single prompt and writes the reply. Used by the -p
// flag for one-shot, scriptable invocations.
func RunOnce(cfg Config, deps Deps, prompt string) {
	reply := deps.Bot.Respond(prompt)
	writeReply(deps.Out, cfg, reply)
}

func writeReply(w io.Writer, cfg Config, reply responder.Reply) {
	tag := cfg.BotName
	if reply.Source == responder.SourceKB {
		tag += " (KB)"
	}
	fmt.Fprintf(w, "%s: %s\n", tag, reply.Text)

	if len(reply.Suggestions) > 0 {
		fmt.Fprintf(w, "   Did you mean: %s?\n", strings.Join(reply.Suggestions, " / "))
	}

	if cfg.Annotate {
		if reply.Sentiment.Label != sentiment.Neutral {
			fmt.Fprintf(w, "   [Sentiment: %s (score %+d)]\n", reply.Sentiment.Label, reply.Sentiment.Score)
		}
		if reply.HasEmotion {
			fmt.Fprintf(w, "   [Emotion: %s]\n", reply.Emotion)
		}
	}
}
