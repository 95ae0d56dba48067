// Package explore is the subject → topic → level → game picker. Each
// step is its own screen on the router stack, so esc walks back one
// choice at a time.
package explore

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	matchengine "github.com/gbianchi/impara/internal/games/matching"
	memoryengine "github.com/gbianchi/impara/internal/games/memory"
	timedengine "github.com/gbianchi/impara/internal/games/timed"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	matchscreen "github.com/gbianchi/impara/internal/screens/matching"
	memoryscreen "github.com/gbianchi/impara/internal/screens/memory"
	"github.com/gbianchi/impara/internal/screens/placeholder"
	timedscreen "github.com/gbianchi/impara/internal/screens/timedgame"
	"github.com/gbianchi/impara/internal/ui/components"
	"github.com/gbianchi/impara/internal/ui/theme"
)

// Step identifies which choice this screen is asking for.
type Step int

const (
	StepSubject Step = iota
	StepTopic
	StepLevel
	StepGame
)

// ExploreScreen is one step of the picker. Selecting an entry pushes
// the next step; the final step pushes the chosen game.
type ExploreScreen struct {
	registry       *content.Registry
	tracker        *progress.Tracker
	announcer      announce.Announcer
	timedQuestions int

	step    Step
	subject string
	topic   string
	level   string
	menu    components.Menu
	empty   bool
}

var _ screen.Screen = (*ExploreScreen)(nil)

// New creates the subject picker, the entry point of the explore flow.
func New(registry *content.Registry, tracker *progress.Tracker, announcer announce.Announcer, timedQuestions int) *ExploreScreen {
	if announcer == nil {
		announcer = announce.Null{}
	}
	s := &ExploreScreen{
		registry:       registry,
		tracker:        tracker,
		announcer:      announcer,
		timedQuestions: timedQuestions,
		step:           StepSubject,
	}
	s.buildMenu()
	return s
}

func (s *ExploreScreen) Init() tea.Cmd {
	return nil
}

func (s *ExploreScreen) Title() string {
	switch s.step {
	case StepTopic:
		return titleCase(s.subject)
	case StepLevel:
		return titleCase(s.topic)
	case StepGame:
		return fmt.Sprintf("%s · livello %s", titleCase(s.topic), s.level)
	default:
		return "Esplora"
	}
}

func (s *ExploreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ExploreScreen) View(width, height int) string {
	prompt := s.prompt()
	body := s.menu.View()
	if s.empty {
		body = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Non c'è ancora niente da giocare qui!\nChiedi a un grande di aggiungere nuovi contenuti.")
	}

	block := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt) +
		"\n\n" + body
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (s *ExploreScreen) prompt() string {
	switch s.step {
	case StepTopic:
		return "Scegli un argomento"
	case StepLevel:
		return "Scegli un livello"
	case StepGame:
		return "Scegli un gioco"
	default:
		return "Scegli una materia"
	}
}

func (s *ExploreScreen) buildMenu() {
	var items []components.MenuItem
	switch s.step {
	case StepSubject:
		for _, subject := range s.registry.Subjects() {
			subject := subject
			items = append(items, components.MenuItem{
				Label: titleCase(subject),
				Action: func() tea.Cmd {
					return s.pushChild(StepTopic, func(c *ExploreScreen) { c.subject = subject })
				},
			})
		}
	case StepTopic:
		for _, topic := range s.registry.Topics(s.subject) {
			topic := topic
			items = append(items, components.MenuItem{
				Label: titleCase(topic),
				Action: func() tea.Cmd {
					return s.pushChild(StepLevel, func(c *ExploreScreen) { c.topic = topic })
				},
			})
		}
	case StepLevel:
		for _, level := range s.registry.Levels(s.subject, s.topic) {
			level := level
			items = append(items, components.MenuItem{
				Label: "Livello " + level,
				Action: func() tea.Cmd {
					return s.pushChild(StepGame, func(c *ExploreScreen) { c.level = level })
				},
			})
		}
	case StepGame:
		items = s.gameItems()
	}

	s.empty = len(items) == 0
	s.menu = components.NewMenu(items)
}

// pushChild pushes the next picker step with one more choice filled in.
func (s *ExploreScreen) pushChild(step Step, fill func(*ExploreScreen)) tea.Cmd {
	next := *s
	fill(&next)
	next.step = step
	next.buildMenu()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: &next}
	}
}

func (s *ExploreScreen) gameItems() []components.MenuItem {
	bundle := s.registry.Resolve(s.subject, s.topic, s.level)
	if bundle == nil {
		return nil
	}

	return []components.MenuItem{
		{
			Label:    "Abbinamenti",
			Disabled: !bundle.HasMatching(),
			Action:   func() tea.Cmd { return s.pushGame(s.matchingScreen(bundle)) },
		},
		{
			Label:    "Memoria",
			Disabled: !bundle.HasMemory(),
			Action:   func() tea.Cmd { return s.pushGame(s.memoryScreen(bundle)) },
		},
		{
			Label:    "Sfida a tempo",
			Disabled: !bundle.HasTimed(),
			Action:   func() tea.Cmd { return s.pushGame(s.timedScreen(bundle)) },
		},
	}
}

func (s *ExploreScreen) pushGame(gs screen.Screen) tea.Cmd {
	if gs == nil {
		gs = placeholder.NewContentUnavailable(s.Title())
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: gs}
	}
}

func (s *ExploreScreen) matchingScreen(bundle *content.Bundle) screen.Screen {
	if !bundle.HasMatching() {
		return nil
	}
	game := matchengine.New(bundle.Matching, newRNG())
	return matchscreen.New(bundle, game, s.tracker, s.announcer)
}

func (s *ExploreScreen) memoryScreen(bundle *content.Bundle) screen.Screen {
	if !bundle.HasMemory() {
		return nil
	}
	game := memoryengine.New(bundle.Memory, newRNG())
	return memoryscreen.New(bundle, game, s.tracker, s.announcer)
}

func (s *ExploreScreen) timedScreen(bundle *content.Bundle) screen.Screen {
	if !bundle.HasTimed() {
		return nil
	}
	game := timedengine.New(bundle.Timed, s.timedQuestions, newRNG())
	return timedscreen.New(bundle, game, s.tracker, s.announcer)
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
