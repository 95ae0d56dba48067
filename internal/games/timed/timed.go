// Package timed implements the countdown quiz: a fixed number of
// randomly drawn questions, each on its own per-question timer, with a
// speed bonus for fast correct answers.
package timed

import (
	"math"
	"math/rand/v2"

	"github.com/gbianchi/impara/internal/content"
)

// DefaultQuestionTotal is the number of questions in one challenge.
const DefaultQuestionTotal = 10

// Phase is the engine lifecycle state.
type Phase int

const (
	// PhaseIdle means no question is active. A game with no timed
	// content never leaves this phase.
	PhaseIdle Phase = iota
	PhaseQuestionActive
	PhaseResolving
	PhaseFinished
)

// Outcome classifies how the active question was resolved.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeTimeout
)

// Resolution is the feedback payload for one resolved question.
type Resolution struct {
	Outcome       Outcome
	Awarded       int
	CorrectOption string
	ChosenIndex   int // -1 on timeout
}

// ActiveQuestion is the runtime copy of the drawn question plus its
// remaining time.
type ActiveQuestion struct {
	content.TimedQuestion
	TimeRemaining int
}

// Game is the timed challenge engine state. The one-second countdown is
// owned by the caller; the engine only reacts to Tick.
type Game struct {
	Phase      Phase
	Current    *ActiveQuestion
	Asked      int // questions started so far
	Total      int
	Score      int
	Correct    int
	LastResult *Resolution
	Generation int

	questions []content.TimedQuestion
	rng       *rand.Rand
}

// New builds a challenge over the bundle's timed questions. total <= 0
// selects DefaultQuestionTotal.
func New(questions []content.TimedQuestion, total int, rng *rand.Rand) *Game {
	if total <= 0 {
		total = DefaultQuestionTotal
	}
	return &Game{
		questions: questions,
		Total:     total,
		rng:       rng,
	}
}

// HasContent reports whether the challenge can start at all.
func (g *Game) HasContent() bool { return len(g.questions) > 0 }

// StartQuestion draws the next question (uniformly, with replacement)
// and arms its countdown. It is a no-op unless the game is idle with
// questions remaining and content to draw from.
func (g *Game) StartQuestion() bool {
	if !g.HasContent() || g.Phase == PhaseFinished || g.Phase == PhaseQuestionActive {
		return false
	}
	if g.Asked >= g.Total {
		g.Phase = PhaseFinished
		return false
	}

	q := g.questions[g.rng.IntN(len(g.questions))]
	g.Current = &ActiveQuestion{TimedQuestion: q, TimeRemaining: q.TimeLimitSecs}
	g.Asked++
	g.LastResult = nil
	g.Phase = PhaseQuestionActive
	return true
}

// Tick consumes one second of the active countdown. At zero the question
// resolves as a timeout, independent of user input. Ticks outside
// PhaseQuestionActive are no-ops, which is what makes a stale timer
// callback harmless.
func (g *Game) Tick() *Resolution {
	if g.Phase != PhaseQuestionActive || g.Current == nil {
		return nil
	}

	g.Current.TimeRemaining--
	if g.Current.TimeRemaining > 0 {
		return nil
	}

	g.Current.TimeRemaining = 0
	g.LastResult = &Resolution{
		Outcome:       OutcomeTimeout,
		CorrectOption: g.Current.Options[g.Current.CorrectIndex],
		ChosenIndex:   -1,
	}
	g.Phase = PhaseResolving
	return g.LastResult
}

// Submit resolves the active question with the chosen option. A correct
// answer awards the question's points plus a speed bonus of
// ceil(TimeRemaining * 2). Submissions outside PhaseQuestionActive are
// rejected.
func (g *Game) Submit(optionIndex int) *Resolution {
	if g.Phase != PhaseQuestionActive || g.Current == nil {
		return nil
	}
	if optionIndex < 0 || optionIndex >= len(g.Current.Options) {
		return nil
	}

	res := &Resolution{
		ChosenIndex:   optionIndex,
		CorrectOption: g.Current.Options[g.Current.CorrectIndex],
	}
	if optionIndex == g.Current.CorrectIndex {
		res.Outcome = OutcomeCorrect
		res.Awarded = g.Current.Points + speedBonus(g.Current.TimeRemaining)
		g.Score += res.Awarded
		g.Correct++
	} else {
		res.Outcome = OutcomeWrong
	}

	g.LastResult = res
	g.Phase = PhaseResolving
	return res
}

// Advance leaves the feedback phase: either the next question starts or
// the challenge finishes with the cumulative score.
func (g *Game) Advance() {
	if g.Phase != PhaseResolving {
		return
	}
	g.Current = nil
	if g.Asked >= g.Total {
		g.Phase = PhaseFinished
		return
	}
	g.Phase = PhaseIdle
	g.StartQuestion()
}

// Restart rewinds to a fresh challenge. The generation bump invalidates
// any countdown scheduled against the old run.
func (g *Game) Restart() {
	g.Generation++
	g.Phase = PhaseIdle
	g.Current = nil
	g.Asked = 0
	g.Score = 0
	g.Correct = 0
	g.LastResult = nil
}

// Finished reports whether all questions have been resolved.
func (g *Game) Finished() bool { return g.Phase == PhaseFinished }

func speedBonus(timeRemaining int) int {
	return int(math.Ceil(float64(timeRemaining) * 2))
}
