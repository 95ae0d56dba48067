package timed

import (
	"math/rand/v2"
	"testing"

	"github.com/gbianchi/impara/internal/content"
)

func testQuestions() []content.TimedQuestion {
	return []content.TimedQuestion{
		{
			Prompt:        "2 + 3 = ?",
			Options:       []string{"4", "5", "6"},
			CorrectIndex:  1,
			Points:        10,
			TimeLimitSecs: 10,
		},
		{
			Prompt:        "7 - 4 = ?",
			Options:       []string{"3", "2"},
			CorrectIndex:  0,
			Points:        15,
			TimeLimitSecs: 15,
		},
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestStartQuestion_EmptyContentStaysIdle(t *testing.T) {
	g := New(nil, 5, testRNG())
	if g.HasContent() {
		t.Fatal("HasContent = true for empty question list")
	}
	if g.StartQuestion() {
		t.Error("StartQuestion succeeded with no content")
	}
	if g.Phase != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle", g.Phase)
	}
}

func TestStartQuestion_ArmsCountdown(t *testing.T) {
	g := New(testQuestions(), 5, testRNG())
	if !g.StartQuestion() {
		t.Fatal("StartQuestion failed")
	}
	if g.Phase != PhaseQuestionActive {
		t.Fatalf("Phase = %v, want PhaseQuestionActive", g.Phase)
	}
	if g.Current == nil {
		t.Fatal("Current question is nil")
	}
	if g.Current.TimeRemaining != g.Current.TimeLimitSecs {
		t.Errorf("TimeRemaining = %d, want %d", g.Current.TimeRemaining, g.Current.TimeLimitSecs)
	}
	if g.Asked != 1 {
		t.Errorf("Asked = %d, want 1", g.Asked)
	}
	if g.StartQuestion() {
		t.Error("StartQuestion succeeded while a question was already active")
	}
}

func TestSubmit_CorrectAwardsSpeedBonus(t *testing.T) {
	qs := []content.TimedQuestion{{
		Prompt:        "2 + 3 = ?",
		Options:       []string{"4", "5"},
		CorrectIndex:  1,
		Points:        10,
		TimeLimitSecs: 10,
	}}
	g := New(qs, 3, testRNG())
	g.StartQuestion()

	for i := 0; i < 5; i++ {
		if res := g.Tick(); res != nil {
			t.Fatalf("Tick %d resolved early: %+v", i, res)
		}
	}
	if g.Current.TimeRemaining != 5 {
		t.Fatalf("TimeRemaining = %d, want 5", g.Current.TimeRemaining)
	}

	res := g.Submit(1)
	if res == nil {
		t.Fatal("Submit returned nil")
	}
	if res.Outcome != OutcomeCorrect {
		t.Errorf("Outcome = %v, want OutcomeCorrect", res.Outcome)
	}
	// 10 points plus ceil(5 * 2) bonus.
	if res.Awarded != 20 {
		t.Errorf("Awarded = %d, want 20", res.Awarded)
	}
	if g.Score != 20 || g.Correct != 1 {
		t.Errorf("Score/Correct = %d/%d, want 20/1", g.Score, g.Correct)
	}
	if g.Phase != PhaseResolving {
		t.Errorf("Phase = %v, want PhaseResolving", g.Phase)
	}
}

func TestSubmit_WrongAwardsNothing(t *testing.T) {
	g := New(testQuestions(), 3, testRNG())
	g.StartQuestion()

	wrong := (g.Current.CorrectIndex + 1) % len(g.Current.Options)
	res := g.Submit(wrong)
	if res == nil {
		t.Fatal("Submit returned nil")
	}
	if res.Outcome != OutcomeWrong {
		t.Errorf("Outcome = %v, want OutcomeWrong", res.Outcome)
	}
	if res.Awarded != 0 || g.Score != 0 {
		t.Errorf("Awarded/Score = %d/%d, want 0/0", res.Awarded, g.Score)
	}
	if res.CorrectOption != g.Current.Options[g.Current.CorrectIndex] {
		t.Errorf("CorrectOption = %q, want %q", res.CorrectOption, g.Current.Options[g.Current.CorrectIndex])
	}
}

func TestSubmit_RejectedOutsideActivePhase(t *testing.T) {
	g := New(testQuestions(), 3, testRNG())
	if res := g.Submit(0); res != nil {
		t.Errorf("Submit while idle = %+v, want nil", res)
	}
	g.StartQuestion()
	g.Submit(g.Current.CorrectIndex)
	if res := g.Submit(0); res != nil {
		t.Errorf("Submit while resolving = %+v, want nil", res)
	}
}

func TestSubmit_OutOfRangeIndexRejected(t *testing.T) {
	g := New(testQuestions(), 3, testRNG())
	g.StartQuestion()
	if res := g.Submit(-1); res != nil {
		t.Errorf("Submit(-1) = %+v, want nil", res)
	}
	if res := g.Submit(len(g.Current.Options)); res != nil {
		t.Errorf("Submit(len) = %+v, want nil", res)
	}
	if g.Phase != PhaseQuestionActive {
		t.Errorf("Phase = %v, want PhaseQuestionActive", g.Phase)
	}
}

func TestTick_TimeoutResolvesWrong(t *testing.T) {
	g := New(testQuestions(), 3, testRNG())
	g.StartQuestion()

	limit := g.Current.TimeLimitSecs
	var res *Resolution
	for i := 0; i < limit; i++ {
		res = g.Tick()
	}
	if res == nil {
		t.Fatal("countdown reached zero without resolving")
	}
	if res.Outcome != OutcomeTimeout {
		t.Errorf("Outcome = %v, want OutcomeTimeout", res.Outcome)
	}
	if res.Awarded != 0 || g.Score != 0 {
		t.Errorf("Awarded/Score = %d/%d, want 0/0", res.Awarded, g.Score)
	}
	if res.ChosenIndex != -1 {
		t.Errorf("ChosenIndex = %d, want -1", res.ChosenIndex)
	}
	if g.Phase != PhaseResolving {
		t.Errorf("Phase = %v, want PhaseResolving", g.Phase)
	}
	// Stale timer callbacks after resolution must not change anything.
	if extra := g.Tick(); extra != nil {
		t.Errorf("Tick after resolve = %+v, want nil", extra)
	}
}

func TestAdvance_FinishesAfterTotal(t *testing.T) {
	g := New(testQuestions(), 3, testRNG())
	for i := 0; i < 3; i++ {
		if g.Phase == PhaseIdle && !g.StartQuestion() {
			t.Fatalf("StartQuestion %d failed", i)
		}
		g.Submit(g.Current.CorrectIndex)
		g.Advance()
	}
	if !g.Finished() {
		t.Fatalf("Phase = %v after %d questions, want PhaseFinished", g.Phase, 3)
	}
	if g.Correct != 3 {
		t.Errorf("Correct = %d, want 3", g.Correct)
	}
	if g.StartQuestion() {
		t.Error("StartQuestion succeeded after finish")
	}
}

func TestNew_DefaultTotal(t *testing.T) {
	g := New(testQuestions(), 0, testRNG())
	if g.Total != DefaultQuestionTotal {
		t.Errorf("Total = %d, want %d", g.Total, DefaultQuestionTotal)
	}
}

func TestRestart_ResetsRun(t *testing.T) {
	g := New(testQuestions(), 3, testRNG())
	g.StartQuestion()
	g.Submit(g.Current.CorrectIndex)

	gen := g.Generation
	g.Restart()
	if g.Generation != gen+1 {
		t.Errorf("Generation = %d, want %d", g.Generation, gen+1)
	}
	if g.Phase != PhaseIdle || g.Score != 0 || g.Asked != 0 || g.Current != nil {
		t.Errorf("restart left state: phase=%v score=%d asked=%d current=%v",
			g.Phase, g.Score, g.Asked, g.Current)
	}
}
