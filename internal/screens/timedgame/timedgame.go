// Package timedgame is the screen for the timed challenge: a run of
// multiple-choice questions, each against its own countdown.
package timedgame

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	engine "github.com/gbianchi/impara/internal/games/timed"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	summaryscreen "github.com/gbianchi/impara/internal/screens/summary"
	"github.com/gbianchi/impara/internal/ui/components"
	"github.com/gbianchi/impara/internal/ui/layout"
	"github.com/gbianchi/impara/internal/ui/theme"
)

const feedbackDelay = 1500 * time.Millisecond

// tickMsg consumes one second of the active countdown. Ticks from a
// previous run carry a stale generation and are dropped.
type tickMsg struct {
	generation int
}

// advanceMsg leaves the feedback pause: next question or summary.
type advanceMsg struct {
	generation int
}

// TimedScreen drives one timed challenge session.
type TimedScreen struct {
	game      *engine.Game
	bundle    *content.Bundle
	tracker   *progress.Tracker
	announcer announce.Announcer

	choice    components.MultiChoice
	startedAt time.Time
}

var _ screen.Screen = (*TimedScreen)(nil)
var _ screen.KeyHintProvider = (*TimedScreen)(nil)

// New creates a TimedScreen over the bundle's timed questions.
func New(bundle *content.Bundle, game *engine.Game, tracker *progress.Tracker, announcer announce.Announcer) *TimedScreen {
	if announcer == nil {
		announcer = announce.Null{}
	}
	return &TimedScreen{
		game:      game,
		bundle:    bundle,
		tracker:   tracker,
		announcer: announcer,
		startedAt: time.Now(),
	}
}

func (s *TimedScreen) Init() tea.Cmd {
	if !s.game.StartQuestion() {
		return nil
	}
	s.loadChoice()
	return s.tickCmd()
}

func (s *TimedScreen) Title() string {
	return "Sfida a tempo"
}

func (s *TimedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Muovi"},
		{Key: "Enter", Description: "Rispondi"},
		{Key: "R", Description: "Ricomincia"},
	}
}

func (s *TimedScreen) loadChoice() {
	q := s.game.Current
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
}

func (s *TimedScreen) tickCmd() tea.Cmd {
	gen := s.game.Generation
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

func (s *TimedScreen) advanceCmd() tea.Cmd {
	gen := s.game.Generation
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return advanceMsg{generation: gen}
	})
}

func (s *TimedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.generation != s.game.Generation {
			return s, nil
		}
		res := s.game.Tick()
		if res == nil {
			if s.game.Phase == engine.PhaseQuestionActive {
				return s, s.tickCmd()
			}
			return s, nil
		}
		// Timeout: reveal the answer with nothing chosen.
		s.choice.Submitted = true
		s.choice.ChosenIndex = -1
		s.announcer.Announce("Tempo scaduto!")
		return s, s.advanceCmd()

	case advanceMsg:
		if msg.generation != s.game.Generation {
			return s, nil
		}
		s.game.Advance()
		if s.game.Finished() {
			return s, s.finish()
		}
		s.loadChoice()
		return s, s.tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *TimedScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "r" {
		s.game.Restart()
		s.startedAt = time.Now()
		if !s.game.StartQuestion() {
			return s, nil
		}
		s.loadChoice()
		return s, s.tickCmd()
	}

	if s.game.Phase != engine.PhaseQuestionActive {
		return s, nil
	}

	before := s.choice.Submitted
	s.choice, _ = s.choice.Update(msg)
	if !s.choice.Submitted || before {
		return s, nil
	}

	res := s.game.Submit(s.choice.ChosenIndex)
	if res == nil {
		return s, nil
	}
	if res.Outcome == engine.OutcomeCorrect {
		s.announcer.Announce("Giusto!")
	} else {
		s.announcer.Announce("Riprova!")
	}
	return s, s.advanceCmd()
}

// finish folds the run into a session result and swaps in the summary.
// A question counts only when answered correctly.
func (s *TimedScreen) finish() tea.Cmd {
	result := progress.SessionResult{
		Subject:          s.bundle.Subject,
		Topic:            s.bundle.Topic,
		Level:            s.bundle.Level,
		ExerciseID:       "timed",
		Score:            s.game.Correct,
		TotalQuestions:   s.game.Total,
		TimeSpentSeconds: int(time.Since(s.startedAt).Seconds()),
		Timestamp:        time.Now(),
	}

	sum := summaryscreen.New(result, s.tracker, s.announcer)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func (s *TimedScreen) View(width, height int) string {
	if s.game.Current == nil {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Un attimo..."))
	}

	var b strings.Builder

	header := fmt.Sprintf("Domanda %d di %d   Punti: %d",
		s.game.Asked, s.game.Total, s.game.Score)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTimer()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if banner := s.renderFeedback(width); banner != "" {
		b.WriteString(banner)
	}

	return b.String()
}

func (s *TimedScreen) renderTimer() string {
	q := s.game.Current
	limit := q.TimeLimitSecs
	if limit <= 0 {
		limit = 1
	}

	bar := components.NewProgressBar("", float64(q.TimeRemaining)/float64(limit), false, 30)

	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if q.TimeRemaining <= 3 {
		style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	return bar.View() + "  " + style.Render(fmt.Sprintf("%ds", q.TimeRemaining))
}

func (s *TimedScreen) renderFeedback(width int) string {
	res := s.game.LastResult
	if res == nil {
		return ""
	}

	var text string
	var style lipgloss.Style
	switch res.Outcome {
	case engine.OutcomeCorrect:
		text = fmt.Sprintf("Giusto! +%d punti ★", res.Awarded)
		style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case engine.OutcomeWrong:
		text = fmt.Sprintf("Riprova! La risposta era: %s", res.CorrectOption)
		style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case engine.OutcomeTimeout:
		text = fmt.Sprintf("Tempo scaduto! La risposta era: %s", res.CorrectOption)
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
}
