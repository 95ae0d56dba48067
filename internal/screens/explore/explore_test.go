package explore

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	matchscreen "github.com/gbianchi/impara/internal/screens/matching"
	"github.com/gbianchi/impara/internal/store"
)

type mockProgressRepo struct{}

func (m *mockProgressRepo) Get(context.Context, string, string, string, string) (*store.SessionRecordData, error) {
	return nil, nil
}

func (m *mockProgressRepo) Put(context.Context, *store.SessionRecordData) error { return nil }

func (m *mockProgressRepo) All(context.Context) ([]*store.SessionRecordData, error) {
	return nil, nil
}

func (m *mockProgressRepo) CompletedCount(context.Context) (int, error) { return 0, nil }

func (m *mockProgressRepo) CompletedBySubject(context.Context) (map[string]int, error) {
	return nil, nil
}

type mockAchievementRepo struct{}

func (m *mockAchievementRepo) Append(context.Context, store.AchievementData) error { return nil }

func (m *mockAchievementRepo) All(context.Context) ([]*store.AchievementData, error) {
	return nil, nil
}

func testExplore(t *testing.T) *ExploreScreen {
	t.Helper()
	registry, err := content.Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tracker := progress.NewTracker(&mockProgressRepo{}, &mockAchievementRepo{}, progress.DefaultThresholds())
	return New(registry, tracker, announce.Null{}, 5)
}

// selectEntry moves the menu cursor to the entry with the given label
// and presses enter, returning the resulting command.
func selectEntry(t *testing.T, s *ExploreScreen, label string) tea.Cmd {
	t.Helper()
	found := false
	for i, item := range s.menu.Items {
		if item.Label == label {
			s.menu.Selected = i
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("menu has no entry %q", label)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("selecting %q produced no command", label)
	}
	return cmd
}

// pushed runs the command and returns the pushed picker step.
func pushed(t *testing.T, cmd tea.Cmd) *ExploreScreen {
	t.Helper()
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want router.PushScreenMsg", cmd())
	}
	next, ok := msg.Screen.(*ExploreScreen)
	if !ok {
		t.Fatalf("pushed screen is %T, want *ExploreScreen", msg.Screen)
	}
	return next
}

func TestExplore_SubjectsFromEmbeddedPacks(t *testing.T) {
	s := testExplore(t)

	if s.step != StepSubject {
		t.Fatalf("step = %d, want StepSubject", s.step)
	}
	if len(s.menu.Items) == 0 {
		t.Fatal("embedded packs should yield at least one subject")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Scegli una materia") {
		t.Fatal("view missing the subject prompt")
	}
}

func TestExplore_WalksDownToGames(t *testing.T) {
	s := testExplore(t)

	registry, _ := content.Load("", nil)
	subject := registry.Subjects()[0]
	topics := pushed(t, selectEntry(t, s, titleCase(subject)))
	if topics.step != StepTopic || topics.subject != subject {
		t.Fatalf("topic step = %d subject = %q", topics.step, topics.subject)
	}

	topic := registry.Topics(subject)[0]
	levels := pushed(t, selectEntry(t, topics, titleCase(topic)))
	if levels.step != StepLevel || levels.topic != topic {
		t.Fatalf("level step = %d topic = %q", levels.step, levels.topic)
	}

	level := registry.Levels(subject, topic)[0]
	games := pushed(t, selectEntry(t, levels, "Livello "+level))
	if games.step != StepGame || games.level != level {
		t.Fatalf("game step = %d level = %q", games.step, games.level)
	}
	if len(games.menu.Items) != 3 {
		t.Fatalf("game menu has %d entries, want 3", len(games.menu.Items))
	}
}

func TestExplore_LaunchingGamePushesGameScreen(t *testing.T) {
	s := testExplore(t)

	registry, _ := content.Load("", nil)
	var games *ExploreScreen
	for _, subject := range registry.Subjects() {
		for _, topic := range registry.Topics(subject) {
			for _, level := range registry.Levels(subject, topic) {
				b := registry.Resolve(subject, topic, level)
				if b.HasMatching() {
					games = &ExploreScreen{
						registry:       s.registry,
						tracker:        s.tracker,
						announcer:      s.announcer,
						timedQuestions: s.timedQuestions,
						step:           StepGame,
						subject:        subject,
						topic:          topic,
						level:          level,
					}
					games.buildMenu()
				}
			}
		}
	}
	if games == nil {
		t.Fatal("no embedded bundle offers the matching game")
	}

	cmd := selectEntry(t, games, "Abbinamenti")
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want router.PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*matchscreen.MatchingScreen); !ok {
		t.Fatalf("pushed screen is %T, want *MatchingScreen", msg.Screen)
	}
}

func TestExplore_TitleCase(t *testing.T) {
	cases := map[string]string{
		"animali": "Animali",
		"":        "",
		"è":       "È",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
