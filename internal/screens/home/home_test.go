package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screens/explore"
	"github.com/gbianchi/impara/internal/store"
)

type mockProgressRepo struct {
	completed int
}

func (m *mockProgressRepo) Get(context.Context, string, string, string, string) (*store.SessionRecordData, error) {
	return nil, nil
}

func (m *mockProgressRepo) Put(context.Context, *store.SessionRecordData) error { return nil }

func (m *mockProgressRepo) All(context.Context) ([]*store.SessionRecordData, error) {
	return nil, nil
}

func (m *mockProgressRepo) CompletedCount(context.Context) (int, error) {
	return m.completed, nil
}

func (m *mockProgressRepo) CompletedBySubject(context.Context) (map[string]int, error) {
	return nil, nil
}

type mockAchievementRepo struct {
	trophies []*store.AchievementData
}

func (m *mockAchievementRepo) Append(context.Context, store.AchievementData) error { return nil }

func (m *mockAchievementRepo) All(context.Context) ([]*store.AchievementData, error) {
	return m.trophies, nil
}

func testHome(t *testing.T, progressRepo *mockProgressRepo, achievementRepo *mockAchievementRepo) *HomeScreen {
	t.Helper()
	registry, err := content.Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tracker := progress.NewTracker(progressRepo, achievementRepo, progress.DefaultThresholds())
	return New("Sofia", registry, tracker, announce.Null{}, 10)
}

func TestHome_LoadsStatsOnInit(t *testing.T) {
	s := testHome(t,
		&mockProgressRepo{completed: 3},
		&mockAchievementRepo{trophies: []*store.AchievementData{
			{Name: "punteggio-perfetto", Timestamp: time.Now().Add(-time.Minute)},
			{Name: "fulmine", Timestamp: time.Now()},
		}},
	)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init must load the stats")
	}
	s.Update(cmd())

	if s.trophies != 2 || s.completed != 3 {
		t.Fatalf("trophies/completed = %d/%d, want 2/3", s.trophies, s.completed)
	}
	if !s.recentTrophy {
		t.Fatal("a trophy unlocked moments ago should count as recent")
	}
}

func TestHome_OldTrophyIsNotRecent(t *testing.T) {
	s := testHome(t,
		&mockProgressRepo{},
		&mockAchievementRepo{trophies: []*store.AchievementData{
			{Name: "costanza", Timestamp: time.Now().Add(-24 * time.Hour)},
		}},
	)

	s.Update(s.Init()())
	if s.recentTrophy {
		t.Fatal("a day-old trophy must not keep the mascot celebrating")
	}
}

func TestHome_RevealReloadsStats(t *testing.T) {
	progressRepo := &mockProgressRepo{}
	s := testHome(t, progressRepo, &mockAchievementRepo{})
	s.Update(s.Init()())

	progressRepo.completed = 7
	_, cmd := s.Update(router.ScreenRevealedMsg{})
	if cmd == nil {
		t.Fatal("regaining focus must reload the stats")
	}
	s.Update(cmd())

	if s.completed != 7 {
		t.Fatalf("completed = %d, want 7 after reload", s.completed)
	}
}

func TestHome_PlaySelectionPushesExplore(t *testing.T) {
	s := testHome(t, &mockProgressRepo{}, &mockAchievementRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting GIOCA produced no command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want router.PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*explore.ExploreScreen); !ok {
		t.Fatalf("pushed screen is %T, want *ExploreScreen", msg.Screen)
	}
}

func TestHome_QuitSelection(t *testing.T) {
	s := testHome(t, &mockProgressRepo{}, &mockAchievementRepo{})

	for i := 0; i < len(s.entries)-1; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting ESCI produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("command produced %T, want tea.QuitMsg", cmd())
	}
}

func TestHome_ViewShowsGreetingAndStats(t *testing.T) {
	s := testHome(t, &mockProgressRepo{completed: 2},
		&mockAchievementRepo{trophies: []*store.AchievementData{{Name: "fulmine", Timestamp: time.Now()}}})
	s.Update(s.Init()())

	view := s.View(80, 30)
	for _, want := range []string{"Ciao, Sofia!", "1 trofei", "2 livelli completati", "GIOCA"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
