// ABOUTME: Ordered regex pattern table mapping utterances to intents
// ABOUTME: Compiled once at init; list order decides which intent wins

package intent

import "regexp"

// rule pairs one compiled pattern with the intent it signals.
type rule struct {
	pattern *regexp.Regexp
	intent  Intent
}

// rules are tested in order against normalized input; the first match wins,
// so earlier entries take precedence when an utterance fits several intents.
var rules = []rule{
	{regexp.MustCompile(`\bhello\b`), Greeting},
	{regexp.MustCompile(`\bhi\b`), Greeting},
	{regexp.MustCompile(`\bhey\b`), Greeting},
	{regexp.MustCompile(`\bgood morning\b`), Greeting},
	{regexp.MustCompile(`\bgood evening\b`), Greeting},
	{regexp.MustCompile(`\bbye\b`), Farewell},
	{regexp.MustCompile(`\bgoodbye\b`), Farewell},
	{regexp.MustCompile(`\bsee you\b`), Farewell},
	{regexp.MustCompile(`\bfarewell\b`), Farewell},
	{regexp.MustCompile(`\bthanks\b`), Thanks},
	{regexp.MustCompile(`\bthank you\b`), Thanks},
	{regexp.MustCompile(`\bthx\b`), Thanks},
	{regexp.MustCompile(`\bhow are you\b`), HowAreYou},
	{regexp.MustCompile(`\bhow s it going\b`), HowAreYou},
	{regexp.MustCompile(`\bhow are things\b`), HowAreYou},
	{regexp.MustCompile(`\bhelp\b`), Help},
	{regexp.MustCompile(`\bassist\b`), Help},
	{regexp.MustCompile(`\bsupport\b`), Help},
	{regexp.MustCompile(`\bwhat can you do\b`), Help},
}
