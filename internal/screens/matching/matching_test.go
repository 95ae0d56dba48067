package matching

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	engine "github.com/gbianchi/impara/internal/games/matching"
	"github.com/gbianchi/impara/internal/progress"
	"github.com/gbianchi/impara/internal/router"
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

func testBundle() *content.Bundle {
	return &content.Bundle{
		Subject: "animali",
		Topic:   "versi",
		Level:   "facile",
		Matching: []content.MatchingPair{
			{Left: content.Item{Text: "cane"}, Right: content.Item{Text: "bau"}},
			{Left: content.Item{Text: "gatto"}, Right: content.Item{Text: "miao"}},
		},
	}
}

func testScreen(t *testing.T) *MatchingScreen {
	t.Helper()
	bundle := testBundle()
	game := engine.New(bundle.Matching, rand.New(rand.NewPCG(1, 2)))
	tracker := progress.NewTracker(&mockProgressRepo{}, &mockAchievementRepo{}, progress.DefaultThresholds())
	return New(bundle, game, tracker, announce.Null{})
}

// targetRow finds the row in the target column holding the partner of
// the given source row.
func targetRow(g *engine.Game, sourceRow int) int {
	for i, it := range g.Target {
		if it.PairID == g.Source[sourceRow].PairID {
			return i
		}
	}
	return -1
}

func matchPair(t *testing.T, s *MatchingScreen, sourceRow int) tea.Cmd {
	t.Helper()
	s.col, s.row = 0, sourceRow
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.row = targetRow(s.game, sourceRow)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMatching_CorrectPairShowsFeedback(t *testing.T) {
	s := testScreen(t)

	cmd := matchPair(t, s, 0)
	if cmd == nil {
		t.Fatal("expected a feedback timer command")
	}
	if s.feedback != feedbackCorrect {
		t.Fatalf("feedback = %d, want feedbackCorrect", s.feedback)
	}
	if s.game.MatchedCount() != 1 {
		t.Fatalf("MatchedCount = %d, want 1", s.game.MatchedCount())
	}
}

func TestMatching_WrongPairShowsRetry(t *testing.T) {
	s := testScreen(t)

	s.col, s.row = 0, 0
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	wrong := targetRow(s.game, 1)
	s.row = wrong
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.feedback != feedbackWrong {
		t.Fatalf("feedback = %d, want feedbackWrong", s.feedback)
	}
	if s.game.Attempts != 1 || s.game.Score != 0 {
		t.Fatalf("attempts/score = %d/%d, want 1/0", s.game.Attempts, s.game.Score)
	}
}

func TestMatching_CompletionReplacesWithSummary(t *testing.T) {
	s := testScreen(t)

	matchPair(t, s, 0)
	cmd := matchPair(t, s, 1)
	if s.feedback != feedbackDone {
		t.Fatalf("feedback = %d, want feedbackDone", s.feedback)
	}
	if cmd == nil {
		t.Fatal("expected a finish timer command")
	}

	_, cmd = s.Update(finishMsg{generation: s.game.Generation})
	if cmd == nil {
		t.Fatal("expected a replace command after finishMsg")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("cmd produced %T, want router.ReplaceScreenMsg", msg)
	}
}

func TestMatching_StaleMessagesIgnored(t *testing.T) {
	s := testScreen(t)

	matchPair(t, s, 0)
	s.Update(clearFeedbackMsg{generation: s.game.Generation - 1})
	if s.feedback != feedbackCorrect {
		t.Fatal("stale clearFeedbackMsg must not clear feedback")
	}

	s.Update(clearFeedbackMsg{generation: s.game.Generation})
	if s.feedback != feedbackNone {
		t.Fatal("current-generation clearFeedbackMsg should clear feedback")
	}

	_, cmd := s.Update(finishMsg{generation: s.game.Generation})
	if cmd != nil {
		t.Fatal("finishMsg on an unfinished game must be a no-op")
	}
}

func TestMatching_RestartResetsState(t *testing.T) {
	s := testScreen(t)

	matchPair(t, s, 0)
	gen := s.game.Generation
	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})

	if s.game.Generation != gen+1 {
		t.Fatalf("Generation = %d, want %d", s.game.Generation, gen+1)
	}
	if s.game.MatchedCount() != 0 || s.feedback != feedbackNone || s.selectedSource != "" {
		t.Fatal("restart should clear matches, feedback and selection")
	}
}

func TestMatching_ViewShowsColumns(t *testing.T) {
	s := testScreen(t)
	view := s.View(80, 24)
	for _, want := range []string{"cane", "gatto", "bau", "miao", "Abbinate: 0 di 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
