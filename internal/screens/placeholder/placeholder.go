package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/ui/theme"
)

// PlaceholderScreen shows a friendly message where a game cannot start,
// e.g. when the selected bundle has no content for the chosen game.
type PlaceholderScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a PlaceholderScreen with the given title and body message.
func New(title, message string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title, message: message}
}

// NewContentUnavailable creates the standard "nothing to play here" screen.
func NewContentUnavailable(title string) *PlaceholderScreen {
	return New(title, "Non c'è ancora niente da giocare qui!\n\nProva un altro argomento\no torna più tardi.")
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ ☁ ╌╌\n\n" + p.message)

	return content
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
