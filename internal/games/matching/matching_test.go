package matching

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gbianchi/impara/internal/content"
)

func testPairs(n int) []content.MatchingPair {
	pairs := make([]content.MatchingPair, n)
	for i := range pairs {
		pairs[i] = content.MatchingPair{
			Left:  content.Item{Text: fmt.Sprintf("left-%d", i)},
			Right: content.Item{Text: fmt.Sprintf("right-%d", i)},
		}
	}
	return pairs
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNew_BuildsColumns(t *testing.T) {
	g := New(testPairs(5), testRNG())

	if g.Phase != PhasePlaying {
		t.Fatalf("Phase = %v, want PhasePlaying", g.Phase)
	}
	if len(g.Source) != 5 || len(g.Target) != 5 {
		t.Fatalf("columns = %d/%d, want 5/5", len(g.Source), len(g.Target))
	}

	// Source keeps pack order.
	for i, it := range g.Source {
		if it.Text != fmt.Sprintf("left-%d", i) {
			t.Errorf("Source[%d].Text = %q, want left-%d", i, it.Text, i)
		}
	}

	// Every pair id appears exactly once in each column.
	seen := make(map[string]int)
	for _, it := range g.Target {
		seen[it.PairID]++
	}
	for _, it := range g.Source {
		if seen[it.PairID] != 1 {
			t.Errorf("pair %s appears %d times in target", it.PairID, seen[it.PairID])
		}
	}
}

func TestNew_EmptyPairsStaysLoading(t *testing.T) {
	g := New(nil, testRNG())
	if g.Phase != PhaseLoading {
		t.Errorf("Phase = %v, want PhaseLoading", g.Phase)
	}
	if got := g.Match("src-0", "tgt-0"); got != MatchRejected {
		t.Errorf("Match on loading game = %v, want MatchRejected", got)
	}
}

func TestMatch_AllCorrectCompletes(t *testing.T) {
	g := New(testPairs(4), testRNG())

	// Match each source with the target carrying the same pair id.
	for _, src := range g.Source {
		var tgtID string
		for _, tgt := range g.Target {
			if tgt.PairID == src.PairID {
				tgtID = tgt.ID
			}
		}
		if got := g.Match(src.ID, tgtID); got != MatchCorrect {
			t.Fatalf("Match(%s, %s) = %v, want MatchCorrect", src.ID, tgtID, got)
		}
	}

	if g.Phase != PhaseCompleted {
		t.Errorf("Phase = %v, want PhaseCompleted", g.Phase)
	}
	if g.Score != 4 {
		t.Errorf("Score = %d, want 4", g.Score)
	}
}

func TestMatch_WrongPairIsNoOp(t *testing.T) {
	g := New(testPairs(3), testRNG())

	src := g.Source[0]
	var wrongTgt Item
	for _, tgt := range g.Target {
		if tgt.PairID != src.PairID {
			wrongTgt = tgt
			break
		}
	}

	if got := g.Match(src.ID, wrongTgt.ID); got != MatchWrong {
		t.Fatalf("Match = %v, want MatchWrong", got)
	}
	if g.Score != 0 {
		t.Errorf("Score = %d, want 0", g.Score)
	}
	if g.Source[0].Matched {
		t.Error("source item flagged matched after wrong attempt")
	}
	for _, tgt := range g.Target {
		if tgt.Matched {
			t.Error("target item flagged matched after wrong attempt")
		}
	}
	if g.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", g.Attempts)
	}
}

func TestMatch_AlreadyMatchedRejected(t *testing.T) {
	g := New(testPairs(2), testRNG())

	src := g.Source[0]
	var tgtID string
	for _, tgt := range g.Target {
		if tgt.PairID == src.PairID {
			tgtID = tgt.ID
		}
	}
	g.Match(src.ID, tgtID)

	if got := g.Match(src.ID, tgtID); got != MatchRejected {
		t.Errorf("repeat Match = %v, want MatchRejected", got)
	}
	if g.Score != 1 {
		t.Errorf("Score = %d, want 1", g.Score)
	}
}

func TestRestart_ResetsMidGame(t *testing.T) {
	g := New(testPairs(4), testRNG())

	src := g.Source[0]
	for _, tgt := range g.Target {
		if tgt.PairID == src.PairID {
			g.Match(src.ID, tgt.ID)
		}
	}
	gen := g.Generation

	g.Restart()

	if g.Generation != gen+1 {
		t.Errorf("Generation = %d, want %d", g.Generation, gen+1)
	}
	if g.Score != 0 || g.Attempts != 0 {
		t.Errorf("Score/Attempts = %d/%d, want 0/0", g.Score, g.Attempts)
	}
	if g.Phase != PhasePlaying {
		t.Errorf("Phase = %v, want PhasePlaying", g.Phase)
	}
	for _, it := range append(g.Source, g.Target...) {
		if it.Matched {
			t.Error("matched flag survived restart")
		}
	}
}
