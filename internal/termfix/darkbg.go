// ABOUTME: Pins the lipgloss background assumption before Bubble Tea initializes
// ABOUTME: Import with _ ahead of any package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// Setting the background up front stops lipgloss from issuing
	// OSC 10/11 terminal queries when bubbletea first asks for it;
	// the async responses to those queries show up as garbage in the
	// input line on some terminals. This package must not import
	// bubbletea, or init order no longer guarantees it runs first.
	lipgloss.SetHasDarkBackground(true)
}
