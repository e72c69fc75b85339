// ABOUTME: Bubble Tea model for the interactive chat TUI
// ABOUTME: Single-line rune input, styled transcript, glamour-rendered KB answers

package chat

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatbuddy/chatbuddy-go/internal/responder"
	"github.com/chatbuddy/chatbuddy-go/internal/sentiment"
)

var (
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	annotationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// entry is one rendered transcript block: a speaker tag plus body.
type entry struct {
	tag  string
	body string
}

// Model is the chat TUI state. Value semantics; Update returns copies.
type Model struct {
	bot      *responder.Responder
	botName  string
	annotate bool

	transcript []entry
	input      []rune
	width      int
	done       bool

	md *markdownRenderer
}

// NewModel builds the chat model.
func NewModel(bot *responder.Responder, botName string, annotate bool) Model {
	if botName == "" {
		botName = "ChatBuddy"
	}
	return Model{
		bot:      bot,
		botName:  botName,
		annotate: annotate,
		width:    80,
		md:       newMarkdownRenderer(),
		transcript: []entry{{
			tag:  botName,
			body: "Ask me something, tell me how you feel, or press Esc to leave.",
		}},
	}
}

// Init returns nil; the model waits for key input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil

		case tea.KeyCtrlU:
			m.input = nil
			return m, nil

		case tea.KeySpace:
			m.input = append(m.input, ' ')
			return m, nil

		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
			return m, nil
		}
	}

	return m, nil
}

// submit runs one conversation turn on the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(string(m.input))
	m.input = nil

	m.transcript = append(m.transcript, entry{tag: "You", body: text})

	reply := m.bot.Respond(text)
	m.transcript = append(m.transcript, m.renderReply(reply))

	if reply.Done {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// renderReply formats one bot reply as a transcript entry. Knowledge
// base answers go through the markdown renderer so stored markdown
// displays styled.
func (m Model) renderReply(reply responder.Reply) entry {
	tag := m.botName
	body := reply.Text
	if reply.Source == responder.SourceKB {
		tag += " (KB)"
		body = m.md.render(reply.Text, m.width-4)
	}

	if len(reply.Suggestions) > 0 {
		body += "\n" + annotationStyle.Render("Did you mean: "+strings.Join(reply.Suggestions, " / ")+"?")
	}
	if m.annotate {
		if reply.Sentiment.Label != sentiment.Neutral {
			body += "\n" + annotationStyle.Render(fmt.Sprintf("[Sentiment: %s (score %+d)]", reply.Sentiment.Label, reply.Sentiment.Score))
		}
		if reply.HasEmotion {
			body += "\n" + annotationStyle.Render(fmt.Sprintf("[Emotion: %s]", reply.Emotion))
		}
	}
	return entry{tag: tag, body: body}
}

// View renders the transcript followed by the input line.
func (m Model) View() string {
	var b strings.Builder
	for _, e := range m.transcript {
		style := botStyle
		if e.tag == "You" {
			style = userStyle
		}
		b.WriteString(style.Render(e.tag+":") + " " + e.body + "\n")
	}
	if !m.done {
		b.WriteString(promptStyle.Render("You: ") + string(m.input) + "█\n")
	}
	return b.String()
}

// markdownRenderer wraps glamour with a small cache keyed by content
// and width, matching how answers repeat across a session.
type markdownRenderer struct {
	cache map[string]string
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: make(map[string]string)}
}

// render returns the terminal-styled rendering of md, falling back to
// the raw text when glamour cannot render.
func (r *markdownRenderer) render(md string, width int) string {
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	key := fmt.Sprintf("%d:%s", width, md)
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	rendered = strings.Trim(rendered, "\n ")

	r.cache[key] = rendered
	return rendered
}
