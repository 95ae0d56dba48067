package progressview

import (
	"context"
	"strings"
	"testing"

	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/store"
)

type mockProgressRepo struct {
	records []*store.SessionRecordData
}

func (m *mockProgressRepo) Get(context.Context, string, string, string, string) (*store.SessionRecordData, error) {
	return nil, nil
}

func (m *mockProgressRepo) Put(context.Context, *store.SessionRecordData) error { return nil }

func (m *mockProgressRepo) All(context.Context) ([]*store.SessionRecordData, error) {
	return m.records, nil
}

func (m *mockProgressRepo) CompletedCount(context.Context) (int, error) {
	n := 0
	for _, rec := range m.records {
		if rec.Completed {
			n++
		}
	}
	return n, nil
}

func (m *mockProgressRepo) CompletedBySubject(context.Context) (map[string]int, error) {
	return nil, nil
}

type mockAchievementRepo struct{}

func (m *mockAchievementRepo) Append(context.Context, store.AchievementData) error { return nil }

func (m *mockAchievementRepo) All(context.Context) ([]*store.AchievementData, error) {
	return nil, nil
}

func testScreen(records []*store.SessionRecordData) *ProgressScreen {
	tracker := progress.NewTracker(&mockProgressRepo{records: records}, &mockAchievementRepo{}, progress.DefaultThresholds())
	s := New(tracker)
	s.Update(s.Init()())
	return s
}

func TestProgressView_EmptyState(t *testing.T) {
	s := testScreen(nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "Nessuna partita ancora") {
		t.Fatal("empty report should invite the player to play")
	}
}

func TestProgressView_ListsRecords(t *testing.T) {
	s := testScreen([]*store.SessionRecordData{
		{
			Subject: "numeri", Topic: "somme", Level: "1", ExerciseID: "timed",
			Score: 8, TotalQuestions: 10, Attempts: 2, Completed: true,
		},
		{
			Subject: "parole", Topic: "animali", Level: "2", ExerciseID: "matching",
			Score: 3, TotalQuestions: 6, Attempts: 1,
		},
	})

	view := s.View(100, 30)
	for _, want := range []string{
		"Livelli completati: 1",
		"numeri · somme · liv. 1",
		"Sfida a tempo  8/10",
		"(2 tentativi)",
		"parole · animali · liv. 2",
		"Abbinamenti  3/6",
		"(1 tentativo)",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
