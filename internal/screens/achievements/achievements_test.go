package achievements

import (
	"context"
	"strings"
	"testing"

	"github.com/gbianchi/impara/internal/progress"
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

type mockAchievementRepo struct {
	trophies []*store.AchievementData
}

func (m *mockAchievementRepo) Append(context.Context, store.AchievementData) error { return nil }

func (m *mockAchievementRepo) All(context.Context) ([]*store.AchievementData, error) {
	return m.trophies, nil
}

func testScreen(trophies []*store.AchievementData) *AchievementsScreen {
	tracker := progress.NewTracker(&mockProgressRepo{}, &mockAchievementRepo{trophies: trophies}, progress.DefaultThresholds())
	s := New(tracker)
	s.Update(s.Init()())
	return s
}

func TestAchievements_EmptyCabinet(t *testing.T) {
	s := testScreen(nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "La bacheca è ancora vuota") {
		t.Fatal("empty cabinet should invite the player to win a trophy")
	}
}

func TestAchievements_ListsTrophies(t *testing.T) {
	s := testScreen([]*store.AchievementData{
		{Name: "punteggio-perfetto", Reason: "Tutte le risposte giuste!"},
		{Name: "fulmine", Reason: "Livello finito a tempo di record!"},
	})

	view := s.View(80, 24)
	for _, want := range []string{
		"2 trofei vinti",
		"punteggio-perfetto",
		"Tutte le risposte giuste!",
		"fulmine",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
