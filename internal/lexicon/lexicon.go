// ABOUTME: Static polarity and emotion keyword tables used by the analyzers
// ABOUTME: Loaded once at init, never mutated afterwards

package lexicon

// Positive holds the polarity lexicon for positive words.
var Positive = newSet(
	"good", "great", "awesome", "fantastic", "love", "liked", "happy", "nice",
	"excellent", "amazing", "wonderful", "best", "positive", "pleased", "enjoy",
	"enjoyed", "yay",
)

// Negative holds the polarity lexicon for negative words.
var Negative = newSet(
	"bad", "terrible", "awful", "hate", "hated", "sad", "angry", "upset",
	"worst", "poor", "negative", "disappointed", "disappointing", "ugh", "sucks",
)

// Emotion keyword sets. Callers must treat these as read-only.
var (
	Joy      = newSet("happy", "joy", "delighted", "excited", "glad", "pleased", "yay", "awesome")
	Sadness  = newSet("sad", "unhappy", "down", "depressed", "blue", "sorrow", "mourn")
	Anger    = newSet("angry", "mad", "furious", "irate", "annoyed", "hate", "hated")
	Fear     = newSet("scared", "afraid", "fear", "terrified", "panic", "anxious")
	Surprise = newSet("surprised", "wow", "shocked", "amazed")
	Love     = newSet("love", "loving", "adore", "cherish")
)

func newSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
