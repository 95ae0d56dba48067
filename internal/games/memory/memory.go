// Package memory implements the card-flip memory game: an even deck of
// paired cards, at most two face up at a time.
package memory

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

// Card is one tile in the deck.
type Card struct {
	ID      string
	Content string
	Icon    string
	FaceUp  bool
	Matched bool
}

// FlipResult reports what a Flip call did.
type FlipResult int

const (
	// FlipRejected means the flip did not happen: two cards are already
	// pending resolution, or the card is face-up, matched, or unknown.
	FlipRejected FlipResult = iota
	FlipFirst
	// FlipSecond means a second card is now face up. The caller must
	// schedule a delay and then call Resolve.
	FlipSecond
)

// Game is the memory engine state. The flip-back/match delay is owned by
// the caller: after FlipSecond the game refuses further flips until
// Resolve is called.
type Game struct {
	Phase      Phase
	Cards      []Card
	Score      int
	Moves      int
	Generation int

	pairs  []content.MemoryPair
	faceUp []int // indices of unresolved face-up cards, len 0..2
	rng    *rand.Rand
}

// New deals two cards per pair into a shuffled face-down deck. With no
// pairs the game stays in PhaseLoading, signalling content-unavailable.
func New(pairs []content.MemoryPair, rng *rand.Rand) *Game {
	g := &Game{pairs: pairs, rng: rng}
	g.build()
	return g
}

func (g *Game) build() {
	g.Score = 0
	g.Moves = 0
	g.Cards = nil
	g.faceUp = nil

	if len(g.pairs) == 0 {
		g.Phase = PhaseLoading
		return
	}

	for i, p := range g.pairs {
		for half := 0; half < 2; half++ {
			g.Cards = append(g.Cards, Card{
				ID:      fmt.Sprintf("card-%d-%d", i, half),
				Content: p.Content,
				Icon:    p.Icon,
			})
		}
	}

	g.rng.Shuffle(len(g.Cards), func(i, j int) {
		g.Cards[i], g.Cards[j] = g.Cards[j], g.Cards[i]
	})

	g.Phase = PhasePlaying
}

// Flip turns a card face up. The two-flip rule: while two unresolved
// cards are face up the deck is locked and every flip is rejected until
// Resolve runs.
func (g *Game) Flip(cardID string) FlipResult {
	if g.Phase != PhasePlaying || len(g.faceUp) >= 2 {
		return FlipRejected
	}

	idx := -1
	for i := range g.Cards {
		if g.Cards[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 || g.Cards[idx].FaceUp || g.Cards[idx].Matched {
		return FlipRejected
	}

	g.Cards[idx].FaceUp = true
	g.faceUp = append(g.faceUp, idx)

	if len(g.faceUp) == 2 {
		return FlipSecond
	}
	return FlipFirst
}

// Resolving reports whether two cards are face up awaiting Resolve.
func (g *Game) Resolving() bool { return len(g.faceUp) == 2 }

// Resolve settles the pending pair after the display delay: equal
// contents become matched (score+1), unequal contents flip back. Either
// way the move counter advances. Returns true when the pair matched.
func (g *Game) Resolve() bool {
	if len(g.faceUp) != 2 {
		return false
	}

	a, b := &g.Cards[g.faceUp[0]], &g.Cards[g.faceUp[1]]
	g.faceUp = nil
	g.Moves++

	if a.Content != b.Content {
		a.FaceUp = false
		b.FaceUp = false
		return false
	}

	a.Matched = true
	b.Matched = true
	g.Score++

	if g.MatchedPairs() == len(g.pairs) {
		g.Phase = PhaseCompleted
	}
	return true
}

// Restart rebuilds and reshuffles the deck with zeroed counters. The
// generation bump invalidates any delay scheduled against the old run.
func (g *Game) Restart() {
	g.Generation++
	g.build()
}

// MatchedPairs returns the number of resolved pairs.
func (g *Game) MatchedPairs() int {
	n := 0
	for _, c := range g.Cards {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

// TotalPairs returns the number of pairs in the deck.
func (g *Game) TotalPairs() int { return len(g.pairs) }

// Completed reports whether every pair has been matched.
func (g *Game) Completed() bool { return g.Phase == PhaseCompleted }
