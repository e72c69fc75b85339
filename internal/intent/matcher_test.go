// ABOUTME: Tests for first-match-wins intent lookup against the pattern table
// ABOUTME: Covers every intent, normalization of raw input, and non-matches

package intent

import "testing"

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   Intent
		wantOK bool
	}{
		{"hello", "Hello there", Greeting, true},
		{"hi with punctuation", "Hi!", Greeting, true},
		{"hey", "hey, quick question", Greeting, true},
		{"good morning", "Good Morning", Greeting, true},
		{"see you", "ok, see you tomorrow", Farewell, true},
		{"thanks", "thanks a lot", Thanks, true},
		{"thank you", "Thank you!", Thanks, true},
		{"thx", "thx", Thanks, true},
		{"how are you", "how are you doing?", HowAreYou, true},
		{"hows it going", "how's it going", HowAreYou, true},
		{"help", "I need help", Help, true},
		{"what can you do", "so, what can you do?", Help, true},
		{"no intent", "tell me about black holes", 0, false},
		{"empty", "", 0, false},
		{"substring does not match", "this is highly helpful", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Match(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v; want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Match(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatch_OrderDecidesOverlap(t *testing.T) {
	t.Parallel()

	// "hello, thanks!" matches both greeting and thanks; greeting patterns
	// come first in the table and must win.
	got, ok := Match("hello, thanks!")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != Greeting {
		t.Errorf("Match = %v; want %v (table order)", got, Greeting)
	}
}

func TestIntent_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		intent Intent
		want   string
	}{
		{Greeting, "greeting"},
		{Farewell, "farewell"},
		{Thanks, "thanks"},
		{HowAreYou, "how_are_you"},
		{Help, "help"},
		{Intent(42), "unknown(42)"},
	}

	for _, tt := range tests {
		if got := tt.intent.String(); got != tt.want {
			t.Errorf("%d.String() = %q; want %q", int(tt.intent), got, tt.want)
		}
	}
}
