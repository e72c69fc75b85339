// ABOUTME: Canned reply pools: per-intent phrasings, empathy variants, small talk
// ABOUTME: Builtin pools are always non-empty so a reply can never come back blank

package replies

import "github.com/chatbuddy/chatbuddy-go/internal/intent"

// Set holds every reply pool the responder draws from. Pools loaded from
// packs replace builtin pools wholesale; a Set is read-only once built.
type Set struct {
	Intents map[intent.Intent][]string

	Fallback []string // small talk when nothing matched

	// Empathy pools, keyed off sentiment and detected emotion.
	Sadness  []string
	Anger    []string
	Negative []string // negative sentiment, no specific emotion
	Delight  []string // positive sentiment with joy/love
	Positive []string // positive sentiment, no specific emotion

	Farewell []string // session exit
	Nudge    []string // empty input
}

// Builtin returns the default reply set.
func Builtin() *Set {
	return &Set{
		Intents: map[intent.Intent][]string{
			intent.Greeting: {
				"Hello! How can I help you today?",
				"Hi there, what can I do for you?",
				"Hey! Ask me anything.",
			},
			intent.Farewell: {
				"Goodbye! Take care.",
				"See you later!",
				"It was nice talking to you.",
			},
			intent.Thanks: {
				"You're welcome!",
				"No problem, happy to help.",
				"Anytime!",
			},
			intent.HowAreYou: {
				"I'm a bot, but I'm running smoothly!",
				"All good here, ready to help you.",
			},
			intent.Help: {
				"I can answer common questions, detect basic sentiment in your text, and fetch answers from a small knowledge base.",
				"Ask me a question from my knowledge base, or just tell me how you're feeling.",
			},
		},
		Fallback: []string{
			"I'm not sure yet, can you rephrase?",
			"I don't have an exact answer for that, but I can try to help.",
			"Interesting, tell me more or ask a different way.",
		},
		Sadness: []string{
			"I'm sorry to hear that. Do you want to talk about it?",
		},
		Anger: []string{
			"I understand that you're upset. Want to vent or get tips to calm down?",
		},
		Negative: []string{
			"That sounds rough. Want some suggestions to help?",
		},
		Delight: []string{
			"That's wonderful to hear! Glad you're feeling good :)",
		},
		Positive: []string{
			"Nice! Happy to hear that.",
		},
		Farewell: []string{
			"Goodbye, take care!",
		},
		Nudge: []string{
			"Say something, I'm listening.",
		},
	}
}

// Intent returns a phrasing for the given intent. Falls back to the
// fallback pool if the intent has no pool, so a reply always exists.
func (s *Set) Intent(i intent.Intent, sel Selector) string {
	pool := s.Intents[i]
	if len(pool) == 0 {
		pool = s.Fallback
	}
	return pick(pool, sel)
}

// PickFallback returns a small-talk phrasing.
func (s *Set) PickFallback(sel Selector) string { return pick(s.Fallback, sel) }

// PickSadness returns an empathetic phrasing for sad input.
func (s *Set) PickSadness(sel Selector) string { return pick(s.Sadness, sel) }

// PickAnger returns a calming phrasing for angry input.
func (s *Set) PickAnger(sel Selector) string { return pick(s.Anger, sel) }

// PickNegative returns a phrasing for generically negative input.
func (s *Set) PickNegative(sel Selector) string { return pick(s.Negative, sel) }

// PickDelight returns a phrasing for joyful or loving input.
func (s *Set) PickDelight(sel Selector) string { return pick(s.Delight, sel) }

// PickPositive returns a phrasing for generically positive input.
func (s *Set) PickPositive(sel Selector) string { return pick(s.Positive, sel) }

// PickFarewell returns the session exit phrasing.
func (s *Set) PickFarewell(sel Selector) string { return pick(s.Farewell, sel) }

// PickNudge returns the empty-input phrasing.
func (s *Set) PickNudge(sel Selector) string { return pick(s.Nudge, sel) }

// pick guards against empty pools: the builtin fallback text is the
// unconditional catch-all so a turn always produces some reply.
func pick(pool []string, sel Selector) string {
	if len(pool) == 0 {
		return "I don't have an answer for that yet, but I'm listening."
	}
	return pool[sel.Pick(len(pool))]
}
