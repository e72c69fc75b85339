// ABOUTME: Entry point for the Bubble Tea chat TUI
// ABOUTME: Creates the tea.Program and blocks until the user exits

package chat

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chatbuddy/chatbuddy-go/internal/responder"
)

// Config configures a chat TUI session.
type Config struct {
	BotName  string
	Annotate bool
}

// Run starts the chat TUI. Blocks until the user exits.
func Run(cfg Config, bot *responder.Responder) error {
	p := tea.NewProgram(NewModel(bot, cfg.BotName, cfg.Annotate))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
