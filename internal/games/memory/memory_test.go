package memory

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gbianchi/impara/internal/content"
)

func testPairs(n int) []content.MemoryPair {
	pairs := make([]content.MemoryPair, n)
	for i := range pairs {
		pairs[i] = content.MemoryPair{Content: fmt.Sprintf("pair-%d", i)}
	}
	return pairs
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(3, 4))
}

// flipPair flips the two cards carrying the given content and returns
// their ids.
func flipPair(t *testing.T, g *Game, contentVal string) {
	t.Helper()
	var ids []string
	for _, c := range g.Cards {
		if c.Content == contentVal && !c.Matched {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) != 2 {
		t.Fatalf("found %d unmatched cards for %q, want 2", len(ids), contentVal)
	}
	if got := g.Flip(ids[0]); got != FlipFirst {
		t.Fatalf("first flip = %v, want FlipFirst", got)
	}
	if got := g.Flip(ids[1]); got != FlipSecond {
		t.Fatalf("second flip = %v, want FlipSecond", got)
	}
}

func TestNew_DeckInvariant(t *testing.T) {
	g := New(testPairs(4), testRNG())

	if g.Phase != PhasePlaying {
		t.Fatalf("Phase = %v, want PhasePlaying", g.Phase)
	}
	if len(g.Cards) != 8 {
		t.Fatalf("deck size = %d, want 8", len(g.Cards))
	}

	byContent := make(map[string]int)
	for _, c := range g.Cards {
		byContent[c.Content]++
		if c.FaceUp || c.Matched {
			t.Errorf("card %s not face-down and unmatched at start", c.ID)
		}
	}
	for content, n := range byContent {
		if n != 2 {
			t.Errorf("content %q on %d cards, want 2", content, n)
		}
	}
}

func TestNew_EmptyPairsStaysLoading(t *testing.T) {
	g := New(nil, testRNG())
	if g.Phase != PhaseLoading {
		t.Errorf("Phase = %v, want PhaseLoading", g.Phase)
	}
	if got := g.Flip("card-0-0"); got != FlipRejected {
		t.Errorf("Flip on loading game = %v, want FlipRejected", got)
	}
}

func TestFlip_ThirdCardRejectedWhileResolving(t *testing.T) {
	g := New(testPairs(3), testRNG())
	flipPair(t, g, "pair-0")

	if !g.Resolving() {
		t.Fatal("expected game to be resolving after two flips")
	}

	// Any further flip must be rejected until Resolve runs.
	for _, c := range g.Cards {
		if !c.FaceUp {
			if got := g.Flip(c.ID); got != FlipRejected {
				t.Fatalf("third flip = %v, want FlipRejected", got)
			}
			break
		}
	}

	g.Resolve()
	if g.Resolving() {
		t.Error("still resolving after Resolve")
	}
}

func TestResolve_MatchScores(t *testing.T) {
	g := New(testPairs(2), testRNG())

	flipPair(t, g, "pair-0")
	if !g.Resolve() {
		t.Fatal("Resolve on equal contents = false, want true")
	}
	if g.Score != 1 || g.Moves != 1 {
		t.Errorf("Score/Moves = %d/%d, want 1/1", g.Score, g.Moves)
	}
	if g.MatchedPairs() != 1 {
		t.Errorf("MatchedPairs = %d, want 1", g.MatchedPairs())
	}
}

func TestResolve_MismatchFlipsBack(t *testing.T) {
	g := New(testPairs(3), testRNG())

	var a, b string
	for _, c := range g.Cards {
		if c.Content == "pair-0" && a == "" {
			a = c.ID
		}
		if c.Content == "pair-1" && b == "" {
			b = c.ID
		}
	}
	g.Flip(a)
	g.Flip(b)

	if g.Resolve() {
		t.Fatal("Resolve on different contents = true, want false")
	}
	if g.Moves != 1 {
		t.Errorf("Moves = %d, want 1 (mismatch still counts)", g.Moves)
	}
	if g.Score != 0 {
		t.Errorf("Score = %d, want 0", g.Score)
	}
	for _, c := range g.Cards {
		if c.FaceUp {
			t.Errorf("card %s still face up after mismatch resolve", c.ID)
		}
	}
}

func TestCompletion(t *testing.T) {
	g := New(testPairs(2), testRNG())

	flipPair(t, g, "pair-0")
	g.Resolve()
	flipPair(t, g, "pair-1")
	g.Resolve()

	if g.Phase != PhaseCompleted {
		t.Errorf("Phase = %v, want PhaseCompleted", g.Phase)
	}
	if g.Score != 2 || g.MatchedPairs() != 2 {
		t.Errorf("Score/MatchedPairs = %d/%d, want 2/2", g.Score, g.MatchedPairs())
	}
}

func TestRestart_ResetsMidGame(t *testing.T) {
	g := New(testPairs(3), testRNG())
	flipPair(t, g, "pair-2")
	g.Resolve()
	gen := g.Generation

	g.Restart()

	if g.Generation != gen+1 {
		t.Errorf("Generation = %d, want %d", g.Generation, gen+1)
	}
	if g.Score != 0 || g.Moves != 0 {
		t.Errorf("Score/Moves = %d/%d, want 0/0", g.Score, g.Moves)
	}
	if g.Resolving() {
		t.Error("resolving flag survived restart")
	}
	for _, c := range g.Cards {
		if c.FaceUp || c.Matched {
			t.Errorf("card %s not reset", c.ID)
		}
	}
}
