// Package summary shows the end-of-session report: the session score,
// how it merged into stored progress, and any trophies it unlocked.
package summary

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/ui/layout"
	"github.com/gbianchi/impara/internal/ui/theme"
)

// recordedMsg is sent when the session result has been merged into the
// store.
type recordedMsg struct {
	outcome *progress.Outcome
	err     error
}

// SummaryScreen displays the session summary and persists the result.
type SummaryScreen struct {
	result    progress.SessionResult
	tracker   *progress.Tracker
	announcer announce.Announcer

	outcome *progress.Outcome
	saveErr error
	pending bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished session. The result is
// recorded when the screen initializes.
func New(result progress.SessionResult, tracker *progress.Tracker, announcer announce.Announcer) *SummaryScreen {
	if announcer == nil {
		announcer = announce.Null{}
	}
	return &SummaryScreen{
		result:    result,
		tracker:   tracker,
		announcer: announcer,
		pending:   true,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		outcome, err := s.tracker.Record(context.Background(), s.result)
		return recordedMsg{outcome: outcome, err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Risultato"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continua"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordedMsg:
		s.pending = false
		s.outcome = msg.outcome
		s.saveErr = msg.err
		if msg.outcome != nil && len(msg.outcome.Unlocked) > 0 {
			s.announcer.Announce("Hai vinto un trofeo!")
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Bravo! Sessione finita!")
	b.WriteString("\n")

	r := s.result
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Punteggio: %d su %d", r.Score, r.TotalQuestions))

	mins := r.TimeSpentSeconds / 60
	secs := r.TimeSpentSeconds % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Tempo: %d:%02d", mins, secs))

	switch {
	case s.pending:
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Salvataggio...")
	case s.saveErr != nil:
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Error),
			"Non sono riuscito a salvare il risultato.")
	case s.outcome != nil:
		rec := s.outcome.Record
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("Record: %d   Tentativi: %d", rec.Score, rec.Attempts))
		if rec.Completed {
			center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "✔ Livello completato!")
		}

		if len(s.outcome.Unlocked) > 0 {
			b.WriteString("\n")
			center(lipgloss.NewStyle().Foreground(theme.TextDim), "Nuovi trofei")
			divider := strings.Repeat("─", min(width-8, 40))
			center(lipgloss.NewStyle().Foreground(theme.Border), divider)
			for _, a := range s.outcome.Unlocked {
				center(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true),
					fmt.Sprintf("★ %s", a.Reason))
			}
		}
	}

	return b.String()
}
