package summary

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/store"
)

// mockProgressRepo implements store.ProgressRepo in memory.
type mockProgressRepo struct {
	records map[string]*store.SessionRecordData
}

func (m *mockProgressRepo) Get(_ context.Context, subject, topic, level, exerciseID string) (*store.SessionRecordData, error) {
	return m.records[subject+"/"+topic+"/"+level+"/"+exerciseID], nil
}

func (m *mockProgressRepo) Put(_ context.Context, rec *store.SessionRecordData) error {
	m.records[rec.Subject+"/"+rec.Topic+"/"+rec.Level+"/"+rec.ExerciseID] = rec
	return nil
}

func (m *mockProgressRepo) All(_ context.Context) ([]*store.SessionRecordData, error) {
	return nil, nil
}

func (m *mockProgressRepo) CompletedCount(_ context.Context) (int, error) { return 0, nil }

func (m *mockProgressRepo) CompletedBySubject(_ context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

type mockAchievementRepo struct {
	events []store.AchievementData
}

func (m *mockAchievementRepo) Append(_ context.Context, data store.AchievementData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *mockAchievementRepo) All(_ context.Context) ([]*store.AchievementData, error) {
	out := make([]*store.AchievementData, len(m.events))
	for i := range m.events {
		out[i] = &m.events[i]
	}
	return out, nil
}

func testTracker() *progress.Tracker {
	return progress.NewTracker(
		&mockProgressRepo{records: make(map[string]*store.SessionRecordData)},
		&mockAchievementRepo{},
		progress.DefaultThresholds(),
	)
}

func testResult() progress.SessionResult {
	return progress.SessionResult{
		Subject:          "matematica",
		Topic:            "addizione",
		Level:            "1",
		ExerciseID:       "timed",
		Score:            10,
		TotalQuestions:   10,
		TimeSpentSeconds: 95,
		Timestamp:        time.Now(),
	}
}

func TestSummary_RecordsOnInit(t *testing.T) {
	s := New(testResult(), testTracker(), nil)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init returned nil command")
	}
	msg, ok := cmd().(recordedMsg)
	if !ok {
		t.Fatalf("msg = %T, want recordedMsg", cmd())
	}
	if msg.err != nil {
		t.Fatalf("record error: %v", msg.err)
	}
	if msg.outcome == nil || msg.outcome.Record == nil {
		t.Fatal("no merged record in outcome")
	}
	if msg.outcome.Record.Score != 10 {
		t.Errorf("merged score = %d, want 10", msg.outcome.Record.Score)
	}
	// A fast perfect session unlocks trophies.
	if len(msg.outcome.Unlocked) == 0 {
		t.Error("expected trophies for a fast perfect session")
	}
}

func TestSummary_ViewStates(t *testing.T) {
	s := New(testResult(), testTracker(), nil)

	if view := s.View(80, 24); view == "" {
		t.Error("empty pending view")
	}

	msg := s.Init()()
	s.Update(msg)
	if view := s.View(80, 24); view == "" {
		t.Error("empty recorded view")
	}
}

func TestSummary_EnterPops(t *testing.T) {
	s := New(testResult(), testTracker(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected pop command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("msg = %T, want router.PopScreenMsg", cmd())
	}
}
