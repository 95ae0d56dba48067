package timedgame

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	engine "github.com/gbianchi/impara/internal/games/timed"
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

func testScreen(t *testing.T, total int) *TimedScreen {
	t.Helper()
	bundle := &content.Bundle{
		Subject: "numeri",
		Topic:   "somme",
		Level:   "facile",
		Timed: []content.TimedQuestion{
			{
				Prompt:        "Quanto fa 2 + 2?",
				Options:       []string{"3", "4", "5"},
				CorrectIndex:  1,
				Points:        10,
				TimeLimitSecs: 5,
			},
		},
	}
	game := engine.New(bundle.Timed, total, rand.New(rand.NewPCG(7, 8)))
	tracker := progress.NewTracker(&mockProgressRepo{}, &mockAchievementRepo{}, progress.DefaultThresholds())
	return New(bundle, game, tracker, announce.Null{})
}

func submitSelected(t *testing.T, s *TimedScreen, optionIndex int) tea.Cmd {
	t.Helper()
	for s.choice.Selected < optionIndex {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	for s.choice.Selected > optionIndex {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestTimed_InitStartsQuestionAndTicker(t *testing.T) {
	s := testScreen(t, 2)

	if cmd := s.Init(); cmd == nil {
		t.Fatal("Init must arm the countdown")
	}
	if s.game.Phase != engine.PhaseQuestionActive {
		t.Fatalf("phase = %d, want PhaseQuestionActive", s.game.Phase)
	}
	if s.choice.Question != "Quanto fa 2 + 2?" {
		t.Fatalf("choice question = %q", s.choice.Question)
	}
}

func TestTimed_CorrectAnswerScoresAndAdvances(t *testing.T) {
	s := testScreen(t, 2)
	s.Init()

	cmd := submitSelected(t, s, 1)
	if cmd == nil {
		t.Fatal("a submission must schedule the advance")
	}
	if s.game.Correct != 1 {
		t.Fatalf("Correct = %d, want 1", s.game.Correct)
	}
	// 10 points plus ceil(5*2) speed bonus.
	if s.game.Score != 20 {
		t.Fatalf("Score = %d, want 20", s.game.Score)
	}

	_, cmd = s.Update(advanceMsg{generation: s.game.Generation})
	if s.game.Asked != 2 {
		t.Fatalf("Asked = %d, want 2", s.game.Asked)
	}
	if cmd == nil {
		t.Fatal("advancing to the next question must re-arm the countdown")
	}
}

func TestTimed_TimeoutRevealsAnswer(t *testing.T) {
	s := testScreen(t, 1)
	s.Init()

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		_, cmd = s.Update(tickMsg{generation: s.game.Generation})
	}
	if cmd == nil {
		t.Fatal("the final tick must schedule the advance")
	}
	if s.game.LastResult == nil || s.game.LastResult.Outcome != engine.OutcomeTimeout {
		t.Fatal("running the clock out must resolve as a timeout")
	}
	if !s.choice.Submitted || s.choice.ChosenIndex != -1 {
		t.Fatal("timeout should reveal the answer with nothing chosen")
	}
}

func TestTimed_FinishReplacesWithSummary(t *testing.T) {
	s := testScreen(t, 1)
	s.Init()

	submitSelected(t, s, 1)
	_, cmd := s.Update(advanceMsg{generation: s.game.Generation})
	if cmd == nil {
		t.Fatal("expected a replace command after the last question")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("finish must replace the screen with the summary")
	}
}

func TestTimed_StaleTickIgnored(t *testing.T) {
	s := testScreen(t, 1)
	s.Init()

	s.Update(tickMsg{generation: s.game.Generation - 1})
	if s.game.Current.TimeRemaining != 5 {
		t.Fatalf("TimeRemaining = %d, stale tick must not consume time", s.game.Current.TimeRemaining)
	}
}

func TestTimed_RestartRewinds(t *testing.T) {
	s := testScreen(t, 2)
	s.Init()
	submitSelected(t, s, 1)

	gen := s.game.Generation
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("restart must re-arm the countdown")
	}
	if s.game.Generation != gen+1 {
		t.Fatalf("Generation = %d, want %d", s.game.Generation, gen+1)
	}
	if s.game.Score != 0 || s.game.Asked != 1 {
		t.Fatalf("score/asked = %d/%d, want 0/1", s.game.Score, s.game.Asked)
	}
}

func TestTimed_ViewShowsPromptAndTimer(t *testing.T) {
	s := testScreen(t, 1)
	s.Init()

	view := s.View(80, 24)
	for _, want := range []string{"Quanto fa 2 + 2?", "Domanda 1 di 1", "5s"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
