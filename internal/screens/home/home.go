// Package home is the arcade lobby: mascot, player stats and the main
// menu.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/screens/achievements"
	"github.com/gbianchi/impara/internal/screens/explore"
	progressscreen "github.com/gbianchi/impara/internal/screens/progressview"
	"github.com/gbianchi/impara/internal/ui/components"
	"github.com/gbianchi/impara/internal/ui/theme"
)

// recentTrophyWindow is how long an unlock keeps the mascot celebrating.
const recentTrophyWindow = 15 * time.Minute

// statsMsg carries the lobby counters loaded from the store.
type statsMsg struct {
	trophies     int
	completed    int
	recentTrophy bool
	err          error
}

type menuEntry struct {
	label  string
	action func() tea.Cmd
}

// HomeScreen is the lobby shown after the welcome flow.
type HomeScreen struct {
	playerName     string
	registry       *content.Registry
	tracker        *progress.Tracker
	announcer      announce.Announcer
	timedQuestions int

	entries      []menuEntry
	selected     int
	trophies     int
	completed    int
	recentTrophy bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the lobby for the named player.
func New(playerName string, registry *content.Registry, tracker *progress.Tracker, announcer announce.Announcer, timedQuestions int) *HomeScreen {
	if announcer == nil {
		announcer = announce.Null{}
	}
	s := &HomeScreen{
		playerName:     playerName,
		registry:       registry,
		tracker:        tracker,
		announcer:      announcer,
		timedQuestions: timedQuestions,
	}
	s.entries = []menuEntry{
		{label: "GIOCA", action: s.pushExplore},
		{label: "I MIEI PROGRESSI", action: s.pushProgress},
		{label: "TROFEI", action: s.pushAchievements},
		{label: "ESCI", action: func() tea.Cmd { return tea.Quit }},
	}
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.loadStats
}

func (s *HomeScreen) Title() string {
	return "Impara"
}

func (s *HomeScreen) loadStats() tea.Msg {
	report, err := s.tracker.Report(context.Background())
	if err != nil {
		return statsMsg{err: err}
	}

	recent := false
	if n := len(report.Achievements); n > 0 {
		last := report.Achievements[n-1]
		recent = time.Since(last.Timestamp) < recentTrophyWindow
	}

	return statsMsg{
		trophies:     len(report.Achievements),
		completed:    report.CompletedCount,
		recentTrophy: recent,
	}
}

func (s *HomeScreen) pushExplore() tea.Cmd {
	next := explore.New(s.registry, s.tracker, s.announcer, s.timedQuestions)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) pushProgress() tea.Cmd {
	next := progressscreen.New(s.tracker)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) pushAchievements() tea.Cmd {
	next := achievements.New(s.tracker)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		if msg.err == nil {
			s.trophies = msg.trophies
			s.completed = msg.completed
			s.recentTrophy = msg.recentTrophy
		}
		return s, nil

	case router.ScreenRevealedMsg:
		// A game may have just written new records.
		return s, s.loadStats

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			return s, s.entries[s.selected].action()
		}
	}
	return s, nil
}

func (s *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	mascot := MascotIdle
	if s.recentTrophy {
		mascot = MascotCelebrating
	}

	greeting := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Ciao, %s!", s.playerName))

	stats := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("★ %d trofei   ✔ %d livelli completati", s.trophies, s.completed))

	var buttons []string
	for i, entry := range s.entries {
		buttons = append(buttons, components.ArcadeButton(entry.label, i == s.selected, cw-4))
	}

	inner := strings.Join([]string{
		RenderMascot(mascot),
		"",
		greeting,
		stats,
		"",
		strings.Join(buttons, "\n"),
	}, "\n")

	return components.CabinetFrame(inner, width, height)
}

// PlayerName returns the name the lobby greets.
func (s *HomeScreen) PlayerName() string { return s.playerName }
