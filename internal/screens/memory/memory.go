// Package memory is the screen for the card-flip memory game: a grid of
// face-down cards, flipped two at a time.
package memory

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	engine "github.com/gbianchi/impara/internal/games/memory"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	summaryscreen "github.com/gbianchi/impara/internal/screens/summary"
	"github.com/gbianchi/impara/internal/ui/layout"
	"github.com/gbianchi/impara/internal/ui/theme"
)

const (
	resolveDelay = 900 * time.Millisecond
	finishDelay  = 1500 * time.Millisecond

	gridColumns = 4
	cardWidth   = 12
)

// resolveMsg settles the pending pair after the look-at-it delay.
type resolveMsg struct {
	generation int
}

// finishMsg moves to the summary once the completion banner has shown.
type finishMsg struct {
	generation int
}

// MemoryScreen drives one memory game session.
type MemoryScreen struct {
	game      *engine.Game
	bundle    *content.Bundle
	tracker   *progress.Tracker
	announcer announce.Announcer

	cursor    int
	lastMatch bool
	resolved  bool
	startedAt time.Time
}

var _ screen.Screen = (*MemoryScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryScreen)(nil)

// New creates a MemoryScreen over the bundle's memory pairs.
func New(bundle *content.Bundle, game *engine.Game, tracker *progress.Tracker, announcer announce.Announcer) *MemoryScreen {
	if announcer == nil {
		announcer = announce.Null{}
	}
	return &MemoryScreen{
		game:      game,
		bundle:    bundle,
		tracker:   tracker,
		announcer: announcer,
		startedAt: time.Now(),
	}
}

func (s *MemoryScreen) Init() tea.Cmd {
	return nil
}

func (s *MemoryScreen) Title() string {
	return "Memoria"
}

func (s *MemoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Muovi"},
		{Key: "Enter", Description: "Gira"},
		{Key: "R", Description: "Ricomincia"},
	}
}

func (s *MemoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resolveMsg:
		if msg.generation != s.game.Generation {
			return s, nil
		}
		matched := s.game.Resolve()
		s.lastMatch = matched
		s.resolved = true
		gen := s.game.Generation
		if s.game.Completed() {
			s.announcer.Announce("Bravissimo! Hai finito!")
			return s, tea.Tick(finishDelay, func(time.Time) tea.Msg {
				return finishMsg{generation: gen}
			})
		}
		if matched {
			s.announcer.Announce("Giusto!")
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

func (s *MemoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.game.Phase == engine.PhaseCompleted && msg.String() != "r" {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor >= gridColumns {
			s.cursor -= gridColumns
		}
	case "down", "j":
		if s.cursor+gridColumns < len(s.game.Cards) {
			s.cursor += gridColumns
		}
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < len(s.game.Cards)-1 {
			s.cursor++
		}
	case "enter":
		return s, s.flip()
	case "r":
		s.game.Restart()
		s.cursor = 0
		s.lastMatch = false
		s.resolved = false
		s.startedAt = time.Now()
	}
	return s, nil
}

func (s *MemoryScreen) flip() tea.Cmd {
	card := s.game.Cards[s.cursor]
	result := s.game.Flip(card.ID)
	if result == engine.FlipFirst {
		s.resolved = false
	}
	if result != engine.FlipSecond {
		return nil
	}

	gen := s.game.Generation
	return tea.Tick(resolveDelay, func(time.Time) tea.Msg {
		return resolveMsg{generation: gen}
	})
}

// finish folds the run into a session result and swaps in the summary.
// A perfect run takes one move per pair; extra moves cost a point each,
// floored at zero.
func (s *MemoryScreen) finish() tea.Cmd {
	total := s.game.TotalPairs()
	score := 2*total - s.game.Moves
	if score < 0 {
		score = 0
	}

	result := progress.SessionResult{
		Subject:          s.bundle.Subject,
		Topic:            s.bundle.Topic,
		Level:            s.bundle.Level,
		ExerciseID:       "memory",
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

func (s *MemoryScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("Coppie: %d di %d   Mosse: %d",
		s.game.MatchedPairs(), s.game.TotalPairs(), s.game.Moves)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderGrid()))
	b.WriteString("\n\n")

	if banner := s.renderBanner(width); banner != "" {
		b.WriteString(banner)
	}

	return b.String()
}

func (s *MemoryScreen) renderGrid() string {
	var rows []string
	for start := 0; start < len(s.game.Cards); start += gridColumns {
		end := start + gridColumns
		if end > len(s.game.Cards) {
			end = len(s.game.Cards)
		}
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, s.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (s *MemoryScreen) renderCard(i int) string {
	card := s.game.Cards[i]

	face := "?"
	if card.FaceUp || card.Matched {
		face = card.Content
		if card.Icon != "" {
			face = card.Icon + " " + face
		}
	}

	style := lipgloss.NewStyle().
		Width(cardWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim)

	switch {
	case card.Matched:
		style = style.Foreground(theme.Success).BorderForeground(theme.Success)
	case card.FaceUp:
		style = style.Foreground(theme.Text).BorderForeground(theme.Secondary)
	}
	if i == s.cursor && s.game.Phase == engine.PhasePlaying {
		style = style.BorderForeground(theme.Primary).Bold(true)
	}

	return style.Render(face)
}

func (s *MemoryScreen) renderBanner(width int) string {
	var text string
	var style lipgloss.Style

	switch {
	case s.game.Completed():
		text = fmt.Sprintf("Bravissimo! Finito in %d mosse!", s.game.Moves)
		style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	case s.game.Resolving():
		text, style = "Vediamo...", lipgloss.NewStyle().Foreground(theme.TextDim)
	case s.resolved && s.lastMatch:
		text, style = "Giusto! ★", lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case s.resolved:
		text, style = "Riprova!", lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	default:
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text))
}
