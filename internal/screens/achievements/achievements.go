// Package achievements is the trophy cabinet: every unlocked
// achievement in unlock order.
package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/store"
	"github.com/gbianchi/impara/internal/ui/theme"
)

// trophiesMsg carries the loaded trophy list, or the load error.
type trophiesMsg struct {
	trophies []*store.AchievementData
	err      error
}

// AchievementsScreen shows the unlocked trophies.
type AchievementsScreen struct {
	tracker *progress.Tracker

	trophies []*store.AchievementData
	loaded   bool
	err      error
}

var _ screen.Screen = (*AchievementsScreen)(nil)

// New creates the trophy cabinet screen.
func New(tracker *progress.Tracker) *AchievementsScreen {
	return &AchievementsScreen{tracker: tracker}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		report, err := s.tracker.Report(context.Background())
		if err != nil {
			return trophiesMsg{err: err}
		}
		return trophiesMsg{trophies: report.Achievements}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Trofei"
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(trophiesMsg); ok {
		s.trophies = msg.trophies
		s.err = msg.err
		s.loaded = true
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	var body string
	switch {
	case s.err != nil:
		body = lipgloss.NewStyle().Foreground(theme.Error).
			Render("Ops! Non riesco a leggere i tuoi trofei.")
	case !s.loaded:
		body = lipgloss.NewStyle().Foreground(theme.TextDim).Render("Un attimo...")
	case len(s.trophies) == 0:
		body = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("La bacheca è ancora vuota.\nVinci una partita per il tuo primo trofeo!")
	default:
		body = s.renderTrophies()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *AchievementsScreen) renderTrophies() string {
	title := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
		Render(fmt.Sprintf("★ %d trofei vinti", len(s.trophies)))
	lines := []string{title, ""}

	for _, trophy := range s.trophies {
		name := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).
			Render("🏆 " + trophy.Name)
		reason := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("   " + trophy.Reason)
		lines = append(lines, name, reason, "")
	}

	return strings.Join(lines, "\n")
}
