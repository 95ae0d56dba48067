// Package progressview is the read-only report of stored session
// records.
package progressview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/ui/layout"
	"github.com/gbianchi/impara/internal/ui/theme"
)

const visibleRows = 12

// reportMsg carries the loaded report, or the load error.
type reportMsg struct {
	report *progress.Report
	err    error
}

// ProgressScreen lists every session record, newest first.
type ProgressScreen struct {
	tracker *progress.Tracker

	report *progress.Report
	err    error
	offset int
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates the progress report screen.
func New(tracker *progress.Tracker) *ProgressScreen {
	return &ProgressScreen{tracker: tracker}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		report, err := s.tracker.Report(context.Background())
		return reportMsg{report: report, err: err}
	}
}

func (s *ProgressScreen) Title() string {
	return "I miei progressi"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scorri"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		s.report = msg.report
		s.err = msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.report != nil && s.offset < len(s.report.Records)-visibleRows {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	var body string
	switch {
	case s.err != nil:
		body = lipgloss.NewStyle().Foreground(theme.Error).
			Render("Ops! Non riesco a leggere i tuoi progressi.")
	case s.report == nil:
		body = lipgloss.NewStyle().Foreground(theme.TextDim).Render("Un attimo...")
	case len(s.report.Records) == 0:
		body = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Nessuna partita ancora.\nGioca per riempire questa pagina!")
	default:
		body = s.renderTable()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *ProgressScreen) renderTable() string {
	header := fmt.Sprintf("Livelli completati: %d", s.report.CompletedCount)
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header),
		"",
	}

	end := s.offset + visibleRows
	if end > len(s.report.Records) {
		end = len(s.report.Records)
	}

	for _, rec := range s.report.Records[s.offset:end] {
		mark := " "
		markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if rec.Completed {
			mark = "✔"
			markStyle = lipgloss.NewStyle().Foreground(theme.Success)
		}

		name := fmt.Sprintf("%-28s", fmt.Sprintf("%s · %s · liv. %s", rec.Subject, rec.Topic, rec.Level))
		score := fmt.Sprintf("%s  %d/%d", gameLabel(rec.ExerciseID), rec.Score, rec.TotalQuestions)
		tries := fmt.Sprintf("(%d tentativi)", rec.Attempts)
		if rec.Attempts == 1 {
			tries = "(1 tentativo)"
		}

		lines = append(lines, strings.Join([]string{
			markStyle.Render(mark),
			lipgloss.NewStyle().Foreground(theme.Text).Render(name),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%-18s", score)),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(tries),
		}, " "))
	}

	if len(s.report.Records) > visibleRows {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d–%d di %d", s.offset+1, end, len(s.report.Records))))
	}

	return strings.Join(lines, "\n")
}

func gameLabel(exerciseID string) string {
	switch exerciseID {
	case "matching":
		return "Abbinamenti"
	case "memory":
		return "Memoria"
	case "timed":
		return "Sfida a tempo"
	default:
		return exerciseID
	}
}
