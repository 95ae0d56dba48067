// Package app wires the stores, content registry and screens into the
// root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/screens/home"
	"github.com/gbianchi/impara/internal/screens/welcome"
	"github.com/gbianchi/impara/internal/store"
	"github.com/gbianchi/impara/internal/ui/layout"
)

// Deps carries everything the TUI needs from the command layer.
type Deps struct {
	Registry       *content.Registry
	Tracker        *progress.Tracker
	Prefs          store.PrefsRepo
	TimedQuestions int
}

// headerStatsMsg refreshes the counters shown in the header bar.
type headerStatsMsg struct {
	playerName string
	trophies   int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router

	playerName string
	trophies   int
	width      int
	height     int
}

// newAppModel builds the root model. A stored player name skips the
// welcome flow.
func newAppModel(deps Deps, playerName string, announcer announce.Announcer) AppModel {
	homeFactory := func(name string) screen.Screen {
		return home.New(name, deps.Registry, deps.Tracker, announcer, deps.TimedQuestions)
	}

	var initial screen.Screen
	if playerName == "" {
		initial = welcome.New(deps.Prefs, homeFactory)
	} else {
		initial = homeFactory(playerName)
	}

	return AppModel{
		deps:       deps,
		router:     router.New(initial),
		playerName: playerName,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.loadHeaderStats, m.router.Active().Init())
}

// loadHeaderStats re-reads the header counters from the store.
func (m AppModel) loadHeaderStats() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	msg := headerStatsMsg{playerName: m.playerName}
	if prefs, err := m.deps.Prefs.Load(ctx); err == nil {
		msg.playerName = prefs.PlayerName
	}
	if report, err := m.deps.Tracker.Report(ctx); err == nil {
		msg.trophies = len(report.Achievements)
	}
	return msg
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.playerName = msg.playerName
		m.trophies = msg.trophies
		return m, nil

	case router.ScreenRevealedMsg:
		// Forward to the revealed screen and refresh the header: the
		// covered stretch may have unlocked trophies or set the name.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadHeaderStats)

	case router.ReplaceScreenMsg:
		// The welcome flow replaces itself with the lobby after saving
		// the player name; pick the name up for the header.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadHeaderStats)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.playerName, m.trophies, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = provider.KeyHints()
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Muovi"},
			{Key: "Enter", Description: "Scegli"},
		}
	}

	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Indietro"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Esci"})
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prefs, err := deps.Prefs.Load(ctx)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	announcer := announce.ForPrefs(prefs.SpeechEnabled)

	p := tea.NewProgram(newAppModel(deps, prefs.PlayerName, announcer))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
