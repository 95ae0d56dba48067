package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressGetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	rec, err := repo.Get(context.Background(), "matematica", "addizione", "1", "matching")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exist")
	}
}

func TestProgressPutThenGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Put(ctx, &SessionRecordData{
		Subject:        "matematica",
		Topic:          "addizione",
		Level:          "1",
		ExerciseID:     "matching",
		Score:          6,
		TotalQuestions: 10,
		TimeSpentSecs:  90,
		Attempts:       1,
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := repo.Get(ctx, "matematica", "addizione", "1", "matching")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.Score != 6 || rec.Attempts != 1 {
		t.Errorf("score/attempts = %d/%d, want 6/1", rec.Score, rec.Attempts)
	}
}

func TestProgressPutReplacesExistingRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := SessionRecordData{
		Subject:        "matematica",
		Topic:          "addizione",
		Level:          "1",
		ExerciseID:     "sfida",
		Score:          6,
		TotalQuestions: 10,
		TimeSpentSecs:  90,
		Attempts:       1,
	}
	if err := repo.Put(ctx, &base); err != nil {
		t.Fatalf("first put: %v", err)
	}

	merged := base
	merged.Score = 9
	merged.Attempts = 2
	merged.TimeSpentSecs = 170
	merged.Completed = true
	if err := repo.Put(ctx, &merged); err != nil {
		t.Fatalf("second put: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("record count = %d, want 1 (same key must not append)", len(all))
	}
	rec := all[0]
	if rec.Score != 9 || rec.Attempts != 2 || rec.TimeSpentSecs != 170 || !rec.Completed {
		t.Errorf("merged record = %+v", rec)
	}
}

func TestProgressCompletedCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rows := []SessionRecordData{
		{Subject: "matematica", Topic: "addizione", Level: "1", ExerciseID: "matching", Completed: true},
		{Subject: "matematica", Topic: "sottrazione", Level: "1", ExerciseID: "memory", Completed: true},
		{Subject: "italiano", Topic: "animali", Level: "1", ExerciseID: "sfida", Completed: true},
		{Subject: "italiano", Topic: "vocali", Level: "1", ExerciseID: "matching", Completed: false},
	}
	for i := range rows {
		if err := repo.Put(ctx, &rows[i]); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	n, err := repo.CompletedCount(ctx)
	if err != nil {
		t.Fatalf("completed count: %v", err)
	}
	if n != 3 {
		t.Errorf("completed count = %d, want 3", n)
	}

	bySubject, err := repo.CompletedBySubject(ctx)
	if err != nil {
		t.Fatalf("completed by subject: %v", err)
	}
	if bySubject["matematica"] != 2 || bySubject["italiano"] != 1 {
		t.Errorf("by subject = %v, want matematica:2 italiano:1", bySubject)
	}
}

func TestAchievementAppendAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.AchievementRepo()
	ctx := context.Background()

	unlocks := []AchievementData{
		{Name: "punteggio-perfetto", Reason: "Punteggio pieno!"},
		{Name: "maestro-matematica", Reason: "Cinque sessioni complete", Subject: "matematica"},
	}
	for i, u := range unlocks {
		if err := repo.Append(ctx, u); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("achievement count = %d, want 2", len(all))
	}
	if all[0].Name != "punteggio-perfetto" || all[1].Name != "maestro-matematica" {
		t.Errorf("order = %q, %q", all[0].Name, all[1].Name)
	}
	if all[0].Sequence >= all[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", all[0].Sequence, all[1].Sequence)
	}
	if all[1].Subject != "matematica" {
		t.Errorf("subject = %q, want matematica", all[1].Subject)
	}
}

func TestPrefsLoadDefaultsWhenMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.PrefsRepo()

	prefs, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if prefs == nil {
		t.Fatal("expected defaults, got nil")
	}
	if prefs.PlayerName != "" || prefs.SpeechEnabled {
		t.Errorf("defaults = %+v", prefs)
	}
}

func TestPrefsSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.PrefsRepo()
	ctx := context.Background()

	want := &PreferenceData{
		PlayerName:    "Giulia",
		SpeechEnabled: true,
		LargeText:     true,
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second save must update the singleton, not add a row.
	want.HighContrast = true
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.PlayerName != "Giulia" || !got.SpeechEnabled || !got.LargeText || !got.HighContrast {
		t.Errorf("loaded prefs = %+v", got)
	}

	count, err := s.Client().Preference.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("preference rows = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"session_records", "achievement_events", "preferences", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "authoring",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    2300,
		Success:      true,
		RequestBody:  "[user]\nGenera un pacchetto sulle frazioni",
		ResponseBody: `{"titolo":"frazioni"}`,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	ev, err := s.Client().LLMRequestEvent.Query().Only(context.Background())
	if err != nil {
		t.Fatalf("query event: %v", err)
	}
	if ev.RequestBody != "[user]\nGenera un pacchetto sulle frazioni" {
		t.Errorf("request body = %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"titolo":"frazioni"}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}
