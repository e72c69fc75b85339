// ABOUTME: Intent categories for routing user utterances to canned replies
// ABOUTME: Defines the Intent enum and its display names

package intent

import "fmt"

// Intent represents a recognized category of user utterance.
type Intent int

const (
	Greeting Intent = iota
	Farewell
	Thanks
	HowAreYou
	Help
)

// String returns the human-readable name of the intent.
func (i Intent) String() string {
	switch i {
	case Greeting:
		return "greeting"
	case Farewell:
		return "farewell"
	case Thanks:
		return "thanks"
	case HowAreYou:
		return "how_are_you"
	case Help:
		return "help"
	default:
		return fmt.Sprintf("unknown(%d)", int(i))
	}
}
