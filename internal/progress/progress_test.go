package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gbianchi/impara/internal/store"
)

// mockProgressRepo implements store.ProgressRepo in memory for testing.
type mockProgressRepo struct {
	records map[string]*store.SessionRecordData
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{records: make(map[string]*store.SessionRecordData)}
}

func key(subject, topic, level, exerciseID string) string {
	return subject + "/" + topic + "/" + level + "/" + exerciseID
}

func (m *mockProgressRepo) Get(_ context.Context, subject, topic, level, exerciseID string) (*store.SessionRecordData, error) {
	rec, ok := m.records[key(subject, topic, level, exerciseID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockProgressRepo) Put(_ context.Context, rec *store.SessionRecordData) error {
	cp := *rec
	m.records[key(rec.Subject, rec.Topic, rec.Level, rec.ExerciseID)] = &cp
	return nil
}

func (m *mockProgressRepo) All(_ context.Context) ([]*store.SessionRecordData, error) {
	var out []*store.SessionRecordData
	for _, rec := range m.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockProgressRepo) CompletedCount(_ context.Context) (int, error) {
	n := 0
	for _, rec := range m.records {
		if rec.Completed {
			n++
		}
	}
	return n, nil
}

func (m *mockProgressRepo) CompletedBySubject(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, rec := range m.records {
		if rec.Completed {
			counts[rec.Subject]++
		}
	}
	return counts, nil
}

// mockAchievementRepo implements store.AchievementRepo in memory.
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

func newTestTracker() (*Tracker, *mockProgressRepo, *mockAchievementRepo) {
	pr := newMockProgressRepo()
	ar := &mockAchievementRepo{}
	return NewTracker(pr, ar, DefaultThresholds()), pr, ar
}

func result(score int) SessionResult {
	return SessionResult{
		Subject:          "matematica",
		Topic:            "addizione",
		Level:            "1",
		ExerciseID:       "matching",
		Score:            score,
		TotalQuestions:   10,
		TimeSpentSeconds: 200,
		Timestamp:        time.Now(),
	}
}

func TestRecord_FirstSession(t *testing.T) {
	tracker, _, _ := newTestTracker()

	out, err := tracker.Record(context.Background(), result(6))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	rec := out.Record
	if rec.Score != 6 || rec.Attempts != 1 || rec.TimeSpentSecs != 200 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Completed {
		t.Error("6/10 marked completed, completion ratio is 0.8")
	}
}

func TestRecord_MergesBetterRetry(t *testing.T) {
	tracker, _, _ := newTestTracker()
	ctx := context.Background()

	if _, err := tracker.Record(ctx, result(6)); err != nil {
		t.Fatalf("first record: %v", err)
	}

	retry := result(9)
	retry.TimeSpentSeconds = 150
	out, err := tracker.Record(ctx, retry)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}

	rec := out.Record
	if rec.Score != 9 {
		t.Errorf("score = %d, want 9 (max of 6 and 9)", rec.Score)
	}
	if rec.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", rec.Attempts)
	}
	if rec.TimeSpentSecs != 350 {
		t.Errorf("time = %d, want 350 (accumulated)", rec.TimeSpentSecs)
	}
	if !rec.Completed {
		t.Error("9/10 not marked completed")
	}
}

func TestRecord_WorseRetryKeepsBestScore(t *testing.T) {
	tracker, _, _ := newTestTracker()
	ctx := context.Background()

	if _, err := tracker.Record(ctx, result(9)); err != nil {
		t.Fatalf("first record: %v", err)
	}
	out, err := tracker.Record(ctx, result(3))
	if err != nil {
		t.Fatalf("second record: %v", err)
	}

	rec := out.Record
	if rec.Score != 9 {
		t.Errorf("score = %d, want 9", rec.Score)
	}
	if !rec.Completed {
		t.Error("completed reverted to false by a worse retry")
	}
}

func TestRecord_KeysAreCaseInsensitive(t *testing.T) {
	tracker, pr, _ := newTestTracker()
	ctx := context.Background()

	r := result(6)
	r.Subject = "  Matematica "
	r.Topic = "ADDIZIONE"
	if _, err := tracker.Record(ctx, r); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := tracker.Record(ctx, result(7)); err != nil {
		t.Fatalf("second record: %v", err)
	}

	if len(pr.records) != 1 {
		t.Errorf("record count = %d, want 1 (key variants must merge)", len(pr.records))
	}
}

func TestRecord_PerfectScoreUnlock(t *testing.T) {
	tracker, _, _ := newTestTracker()

	out, err := tracker.Record(context.Background(), result(10))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !hasUnlock(out.Unlocked, "punteggio-perfetto") {
		t.Errorf("unlocked = %v, want punteggio-perfetto", names(out.Unlocked))
	}

	// Second perfect score must not re-unlock.
	again := result(10)
	again.Topic = "sottrazione"
	out, err = tracker.Record(context.Background(), again)
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if hasUnlock(out.Unlocked, "punteggio-perfetto") {
		t.Error("punteggio-perfetto unlocked twice")
	}
}

func TestRecord_SpeedBonusUnlock(t *testing.T) {
	tracker, _, _ := newTestTracker()

	fast := result(9)
	fast.TimeSpentSeconds = 80
	out, err := tracker.Record(context.Background(), fast)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !hasUnlock(out.Unlocked, "fulmine") {
		t.Errorf("unlocked = %v, want fulmine", names(out.Unlocked))
	}

	// Fast but low-scoring sessions do not qualify.
	tracker2, _, _ := newTestTracker()
	slow := result(5)
	slow.TimeSpentSeconds = 80
	out, err = tracker2.Record(context.Background(), slow)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if hasUnlock(out.Unlocked, "fulmine") {
		t.Error("fulmine unlocked with score below the bonus ratio")
	}
}

func TestRecord_SubjectMasteryUnlock(t *testing.T) {
	tracker, _, _ := newTestTracker()
	ctx := context.Background()

	topics := []string{"addizione", "sottrazione", "tabelline", "divisione", "frazioni"}
	var last *Outcome
	for i, topic := range topics {
		r := result(9)
		r.Topic = topic
		out, err := tracker.Record(ctx, r)
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		last = out
		if i < len(topics)-1 && hasUnlock(out.Unlocked, "maestro-matematica") {
			t.Fatalf("mastery unlocked after only %d sessions", i+1)
		}
	}

	if !hasUnlock(last.Unlocked, "maestro-matematica") {
		t.Errorf("unlocked = %v, want maestro-matematica after 5 completed sessions", names(last.Unlocked))
	}
	for _, a := range last.Unlocked {
		if a.Name == "maestro-matematica" && a.Subject != "matematica" {
			t.Errorf("mastery subject = %q, want matematica", a.Subject)
		}
	}
}

func TestRecord_PersistenceUnlock(t *testing.T) {
	tracker, _, ar := newTestTracker()
	ctx := context.Background()

	subjects := []string{"matematica", "geografia"}
	var last *Outcome
	for i := 0; i < 10; i++ {
		r := result(9)
		r.Subject = subjects[i%2]
		r.Topic = fmt.Sprintf("argomento-%d", i)
		out, err := tracker.Record(ctx, r)
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		last = out
		if i < 9 && hasUnlock(out.Unlocked, "costanza") {
			t.Fatalf("costanza unlocked after only %d sessions", i+1)
		}
	}

	if !hasUnlock(last.Unlocked, "costanza") {
		t.Errorf("unlocked = %v, want costanza after 10 completed sessions", names(last.Unlocked))
	}

	// An eleventh session must not re-append the achievement.
	r := result(9)
	r.Topic = "argomento-11"
	out, err := tracker.Record(ctx, r)
	if err != nil {
		t.Fatalf("record 11: %v", err)
	}
	if hasUnlock(out.Unlocked, "costanza") {
		t.Error("costanza unlocked twice")
	}
	held := 0
	for _, a := range ar.events {
		if a.Name == "costanza" {
			held++
		}
	}
	if held != 1 {
		t.Errorf("costanza appended %d times, want 1", held)
	}
}

func TestReport(t *testing.T) {
	tracker, _, _ := newTestTracker()
	ctx := context.Background()

	if _, err := tracker.Record(ctx, result(10)); err != nil {
		t.Fatalf("record: %v", err)
	}

	report, err := tracker.Report(ctx)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(report.Records) != 1 {
		t.Errorf("records = %d, want 1", len(report.Records))
	}
	if report.CompletedCount != 1 {
		t.Errorf("completed = %d, want 1", report.CompletedCount)
	}
	if report.BySubject["matematica"] != 1 {
		t.Errorf("by subject = %v", report.BySubject)
	}
	if len(report.Achievements) == 0 {
		t.Error("no achievements in report after a perfect score")
	}
}

func hasUnlock(unlocked []store.AchievementData, name string) bool {
	for _, a := range unlocked {
		if a.Name == name {
			return true
		}
	}
	return false
}

func names(unlocked []store.AchievementData) []string {
	out := make([]string, len(unlocked))
	for i, a := range unlocked {
		out[i] = a.Name
	}
	return out
}
