// ABOUTME: Per-turn orchestration: exit check, intent, knowledge base, empathy, fallback
// ABOUTME: Sentiment/emotion are annotations only and never choose the reply branch

package responder

import (
	"time"

	"github.com/chatbuddy/chatbuddy-go/internal/emotion"
	"github.com/chatbuddy/chatbuddy-go/internal/intent"
	"github.com/chatbuddy/chatbuddy-go/internal/kb"
	"github.com/chatbuddy/chatbuddy-go/internal/log"
	"github.com/chatbuddy/chatbuddy-go/internal/replies"
	"github.com/chatbuddy/chatbuddy-go/internal/sentiment"
	"github.com/chatbuddy/chatbuddy-go/internal/textnorm"
)

// Source says which branch produced a reply.
type Source string

const (
	SourceIntent   Source = "intent"
	SourceKB       Source = "kb"
	SourceEmpathy  Source = "empathy"
	SourceFallback Source = "fallback"
	SourceExit     Source = "exit"
	SourceNudge    Source = "nudge"
)

// Reply is the outcome of one conversation turn.
type Reply struct {
	Text        string
	Source      Source
	Sentiment   sentiment.Result
	Emotion     emotion.Category
	HasEmotion  bool
	Suggestions []string // near-miss KB questions on turns where the lookup missed
	Done        bool     // session should end
}

// exitWords terminate the session when present as a whole token.
var exitWords = map[string]struct{}{
	"bye": {}, "goodbye": {}, "exit": {}, "quit": {},
}

// Options configures a Responder. Zero values get sensible defaults;
// a nil KB simply disables knowledge base lookups.
type Options struct {
	KB        *kb.Matcher
	Replies   *replies.Set
	Selector  replies.Selector
	NoEmotion bool // suppress the emotion annotation
}

// Responder maps one free-text input to one reply. It keeps no state
// across turns and is safe for concurrent use once constructed.
type Responder struct {
	kb        *kb.Matcher
	set       *replies.Set
	sel       replies.Selector
	noEmotion bool
}

// New builds a Responder from opts.
func New(opts Options) *Responder {
	set := opts.Replies
	if set == nil {
		set = replies.Builtin()
	}
	sel := opts.Selector
	if sel == nil {
		sel = replies.NewRandomSelector(time.Now().UnixNano())
	}
	return &Responder{kb: opts.KB, set: set, sel: sel, noEmotion: opts.NoEmotion}
}

// Respond produces the reply for one turn. It always returns a non-empty
// reply text; it never fails.
func (r *Responder) Respond(input string) Reply {
	reply := Reply{Sentiment: sentiment.Score(input)}
	if !r.noEmotion {
		reply.Emotion, reply.HasEmotion = emotion.Detect(input)
	}

	tokens := textnorm.TokenSet(input)
	if len(tokens) == 0 {
		reply.Text = r.set.PickNudge(r.sel)
		reply.Source = SourceNudge
		return reply
	}

	for w := range exitWords {
		if _, ok := tokens[w]; ok {
			reply.Text = r.set.PickFarewell(r.sel)
			reply.Source = SourceExit
			reply.Done = true
			return reply
		}
	}

	if matched, ok := intent.Match(input); ok {
		reply.Text = r.set.Intent(matched, r.sel)
		reply.Source = SourceIntent
		log.Debug("responder: intent %v", matched)
		return reply
	}

	if r.kb != nil {
		if hit, ok := r.kb.Match(input); ok {
			reply.Text = hit.Entry.Answer
			reply.Source = SourceKB
			log.Debug("responder: kb entry %d score %.2f", hit.Index, hit.Score)
			return reply
		}
		// a near miss still surfaces candidates, whichever branch replies
		reply.Suggestions = r.kb.Suggest(input, 3)
	}

	if text, ok := r.empathize(input, reply.Sentiment); ok {
		reply.Text = text
		reply.Source = SourceEmpathy
		return reply
	}

	reply.Text = r.set.PickFallback(r.sel)
	reply.Source = SourceFallback
	return reply
}

// empathize picks a sentiment-aware reply when the input carried clear
// polarity. The detected emotion refines the phrasing but nothing here
// changes which earlier branch fired.
func (r *Responder) empathize(input string, s sentiment.Result) (string, bool) {
	if s.Label == sentiment.Neutral {
		return "", false
	}
	found := emotion.DetectAll(input)
	if s.Label == sentiment.Negative {
		switch {
		case found[emotion.Sadness] > 0:
			return r.set.PickSadness(r.sel), true
		case found[emotion.Anger] > 0:
			return r.set.PickAnger(r.sel), true
		default:
			return r.set.PickNegative(r.sel), true
		}
	}
	if found[emotion.Joy] > 0 || found[emotion.Love] > 0 {
		return r.set.PickDelight(r.sel), true
	}
	return r.set.PickPositive(r.sel), true
}
