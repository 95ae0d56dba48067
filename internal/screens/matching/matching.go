// Package matching is the screen for the pair-matching game: pick an
// item on the left, find its partner on the right.
package matching

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	engine "github.com/gbianchi/impara/internal/games/matching"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	summaryscreen "github.com/gbianchi/impara/internal/screens/summary"
	"github.com/gbianchi/impara/internal/ui/layout"
	"github.com/gbianchi/impara/internal/ui/theme"
)

const (
	feedbackDelay = 1200 * time.Millisecond
	finishDelay   = 1500 * time.Millisecond
)

// clearFeedbackMsg hides the feedback banner. Messages from a previous
// run carry a stale generation and are dropped.
type clearFeedbackMsg struct {
	generation int
}

// finishMsg moves to the summary once the completion banner has shown.
type finishMsg struct {
	generation int
}

type feedbackKind int

const (
	feedbackNone feedbackKind = iota
	feedbackCorrect
	feedbackWrong
	feedbackDone
)

// MatchingScreen drives one matching game session.
type MatchingScreen struct {
	game      *engine.Game
	bundle    *content.Bundle
	tracker   *progress.Tracker
	announcer announce.Announcer

	col            int // 0 = left column, 1 = right column
	row            int
	selectedSource string
	feedback       feedbackKind
	startedAt      time.Time
}

var _ screen.Screen = (*MatchingScreen)(nil)
var _ screen.KeyHintProvider = (*MatchingScreen)(nil)

// New creates a MatchingScreen over the bundle's matching pairs.
func New(bundle *content.Bundle, game *engine.Game, tracker *progress.Tracker, announcer announce.Announcer) *MatchingScreen {
	if announcer == nil {
		announcer = announce.Null{}
	}
	return &MatchingScreen{
		game:      game,
		bundle:    bundle,
		tracker:   tracker,
		announcer: announcer,
		startedAt: time.Now(),
	}
}

func (s *MatchingScreen) Init() tea.Cmd {
	return nil
}

func (s *MatchingScreen) Title() string {
	return "Abbinamenti"
}

func (s *MatchingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Colonna"},
		{Key: "↑↓", Description: "Muovi"},
		{Key: "Enter", Description: "Scegli"},
		{Key: "R", Description: "Ricomincia"},
	}
}

func (s *MatchingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clearFeedbackMsg:
		if msg.generation != s.game.Generation {
			return s, nil
		}
		if s.feedback == feedbackWrong || s.feedback == feedbackCorrect {
			s.feedback = feedbackNone
		}
		return s, nil

	case finishMsg:
		if msg.generation != s.game.Generation || !s.game.Completed() {
			return s, nil
		}
		return s, s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MatchingScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.game.Phase == engine.PhaseCompleted && msg.String() != "r" {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < len(s.game.Source)-1 {
			s.row++
		}
	case "left", "h":
		s.col = 0
	case "right", "l":
		s.col = 1
	case "enter":
		return s, s.choose()
	case "r":
		s.game.Restart()
		s.col, s.row = 0, 0
		s.selectedSource = ""
		s.feedback = feedbackNone
		s.startedAt = time.Now()
	}
	return s, nil
}

func (s *MatchingScreen) choose() tea.Cmd {
	if s.col == 0 {
		item := s.game.Source[s.row]
		if item.Matched {
			return nil
		}
		s.selectedSource = item.ID
		s.col = 1
		return nil
	}

	if s.selectedSource == "" {
		return nil
	}
	target := s.game.Target[s.row]
	outcome := s.game.Match(s.selectedSource, target.ID)
	gen := s.game.Generation

	switch outcome {
	case engine.MatchCorrect:
		s.selectedSource = ""
		s.col = 0
		if s.game.Completed() {
			s.feedback = feedbackDone
			s.announcer.Announce("Bravissimo! Hai finito!")
			return tea.Tick(finishDelay, func(time.Time) tea.Msg {
				return finishMsg{generation: gen}
			})
		}
		s.feedback = feedbackCorrect
		s.announcer.Announce("Giusto!")
	case engine.MatchWrong:
		s.selectedSource = ""
		s.col = 0
		s.feedback = feedbackWrong
		s.announcer.Announce("Riprova!")
	default:
		return nil
	}

	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return clearFeedbackMsg{generation: gen}
	})
}

// finish folds the run into a session result and swaps in the summary.
// Each wrong attempt costs one point off a perfect score.
func (s *MatchingScreen) finish() tea.Cmd {
	total := s.game.TotalPairs()
	wrong := s.game.Attempts - s.game.Score
	score := total - wrong
	if score < 0 {
		score = 0
	}

	result := progress.SessionResult{
		Subject:          s.bundle.Subject,
		Topic:            s.bundle.Topic,
		Level:            s.bundle.Level,
		ExerciseID:       "matching",
		Score:            score,
		TotalQuestions:   total,
		TimeSpentSeconds: int(time.Since(s.startedAt).Seconds()),
		Timestamp:        time.Now(),
	}

	sum := summaryscreen.New(result, s.tracker, s.announcer)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func (s *MatchingScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("Abbinate: %d di %d", s.game.MatchedCount(), s.game.TotalPairs())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n\n")

	left := s.renderColumn(s.game.Source, 0)
	right := s.renderColumn(s.game.Target, 1)
	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "      ", right)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, columns))
	b.WriteString("\n\n")

	if banner := s.renderFeedback(width); banner != "" {
		b.WriteString(banner)
	}

	return b.String()
}

func (s *MatchingScreen) renderColumn(items []engine.Item, col int) string {
	var lines []string
	for i, item := range items {
		label := item.Text
		if item.Icon != "" {
			label = item.Icon + " " + label
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		switch {
		case item.Matched:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
			label = "✔ " + label
		case col == 0 && item.ID == s.selectedSource:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
			label = "● " + label
		}
		if s.col == col && s.row == i && s.game.Phase == engine.PhasePlaying {
			prefix = "▸ "
			if !item.Matched {
				style = style.Foreground(theme.Primary).Bold(true)
			}
		}
		lines = append(lines, style.Render(prefix+label))
	}
	return strings.Join(lines, "\n")
}

func (s *MatchingScreen) renderFeedback(width int) string {
	var text string
	var style lipgloss.Style

	switch s.feedback {
	case feedbackCorrect:
		text, style = "Giusto! ★", lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case feedbackWrong:
		text, style = "Riprova!", lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case feedbackDone:
		text, style = "Bravissimo! Tutte abbinate!", lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	default:
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
}
