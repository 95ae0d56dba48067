// Package matching implements the pair-matching game: a fixed source
// column and a shuffled target column, matched one drag (or tap-tap
// selection) at a time.
package matching

import (
	"fmt"
	"math/rand/v2"

	"github.com/gbianchi/impara/internal/content"
)

// Phase is the engine lifecycle state.
type Phase int

const (
	// PhaseLoading means the game has no usable content and never started.
	PhaseLoading Phase = iota
	PhasePlaying
	PhaseCompleted
)

// Item is one selectable tile in either column.
type Item struct {
	ID      string
	Text    string
	Icon    string
	PairID  string
	Matched bool
}

// Outcome classifies the result of a match attempt.
type Outcome int

const (
	// MatchRejected means the attempt did not count: unknown item,
	// already-matched item, or the game is not in the playing phase.
	MatchRejected Outcome = iota
	MatchWrong
	MatchCorrect
)

// Game is the matching engine state. It owns no timers and performs no
// I/O; the screen layer drives it through Match and Restart.
type Game struct {
	Phase      Phase
	Source     []Item
	Target     []Item
	Score      int
	Attempts   int
	Generation int

	pairs []content.MatchingPair
	rng   *rand.Rand
}

// New builds a game from the bundle's matching pairs. With no pairs the
// game stays in PhaseLoading, signalling content-unavailable.
func New(pairs []content.MatchingPair, rng *rand.Rand) *Game {
	g := &Game{pairs: pairs, rng: rng}
	g.build()
	return g
}

func (g *Game) build() {
	g.Score = 0
	g.Attempts = 0
	g.Source = nil
	g.Target = nil

	if len(g.pairs) == 0 {
		g.Phase = PhaseLoading
		return
	}

	for i, p := range g.pairs {
		pairID := fmt.Sprintf("pair-%d", i)
		g.Source = append(g.Source, Item{
			ID:     fmt.Sprintf("src-%d", i),
			Text:   p.Left.Text,
			Icon:   p.Left.Icon,
			PairID: pairID,
		})
		g.Target = append(g.Target, Item{
			ID:     fmt.Sprintf("tgt-%d", i),
			Text:   p.Right.Text,
			Icon:   p.Right.Icon,
			PairID: pairID,
		})
	}

	g.rng.Shuffle(len(g.Target), func(i, j int) {
		g.Target[i], g.Target[j] = g.Target[j], g.Target[i]
	})

	g.Phase = PhasePlaying
}

// Match attempts to pair a source item with a target item. A correct
// attempt marks both items matched and scores a point; a wrong attempt
// leaves all item flags untouched. Both count toward Attempts.
func (g *Game) Match(sourceID, targetID string) Outcome {
	if g.Phase != PhasePlaying {
		return MatchRejected
	}

	src := findItem(g.Source, sourceID)
	tgt := findItem(g.Target, targetID)
	if src == nil || tgt == nil || src.Matched || tgt.Matched {
		return MatchRejected
	}

	g.Attempts++

	if src.PairID != tgt.PairID {
		return MatchWrong
	}

	src.Matched = true
	tgt.Matched = true
	g.Score++

	if g.MatchedCount() == len(g.pairs) {
		g.Phase = PhaseCompleted
	}
	return MatchCorrect
}

// Restart rebuilds both columns with a fresh shuffle and zeroed counters.
// The generation bump invalidates anything scheduled against the old run.
func (g *Game) Restart() {
	g.Generation++
	g.build()
}

// MatchedCount returns the number of matched pairs.
func (g *Game) MatchedCount() int {
	n := 0
	for _, it := range g.Source {
		if it.Matched {
			n++
		}
	}
	return n
}

// TotalPairs returns the number of pairs in play.
func (g *Game) TotalPairs() int { return len(g.pairs) }

// Completed reports whether every pair has been matched.
func (g *Game) Completed() bool { return g.Phase == PhaseCompleted }

func findItem(items []Item, id string) *Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}
