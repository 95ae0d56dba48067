// Package welcome is the first-run screen: it asks for the player's
// name and stores it in preferences before handing over to home.
package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/store"
	"github.com/gbianchi/impara/internal/ui/components"
	"github.com/gbianchi/impara/internal/ui/layout"
	"github.com/gbianchi/impara/internal/ui/theme"
)

const maxNameLength = 20

// savedMsg is sent when the player name has been persisted.
type savedMsg struct {
	name string
	err  error
}

// WelcomeScreen asks for the player's name on first run.
type WelcomeScreen struct {
	prefs       store.PrefsRepo
	homeFactory func(playerName string) screen.Screen
	input       components.TextInput
	saving      bool
	errMsg      string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that saves the name through prefs and then
// replaces itself with the screen produced by homeFactory.
func New(prefs store.PrefsRepo, homeFactory func(playerName string) screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		prefs:       prefs,
		homeFactory: homeFactory,
		input:       components.NewTextInput("Scrivi il tuo nome...", false, maxNameLength),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Avanti"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		w.saving = false
		if msg.err != nil {
			w.errMsg = "Non riesco a salvare il nome, riprova."
			return w, nil
		}
		home := w.homeFactory(msg.name)
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: home}
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && !w.saving {
			name := strings.TrimSpace(w.input.Value())
			if name == "" {
				w.errMsg = "Come ti chiami? Scrivi il tuo nome!"
				return w, nil
			}
			w.saving = true
			w.errMsg = ""
			return w, w.save(name)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) save(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		prefs, err := w.prefs.Load(ctx)
		if err != nil {
			return savedMsg{name: name, err: err}
		}
		prefs.PlayerName = name
		return savedMsg{name: name, err: w.prefs.Save(ctx, prefs)}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Ciao! Come ti chiami?")
	sections = append(sections, greeting, "")

	sections = append(sections, w.input.View())

	if w.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
