package memory

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/announce"
	"github.com/gbianchi/impara/internal/content"
	engine "github.com/gbianchi/impara/internal/games/memory"
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

func testScreen(t *testing.T) *MemoryScreen {
	t.Helper()
	bundle := &content.Bundle{
		Subject: "parole",
		Topic:   "animali",
		Level:   "facile",
		Memory: []content.MemoryPair{
			{Content: "cane"},
			{Content: "gatto"},
		},
	}
	game := engine.New(bundle.Memory, rand.New(rand.NewPCG(3, 4)))
	tracker := progress.NewTracker(&mockProgressRepo{}, &mockAchievementRepo{}, progress.DefaultThresholds())
	return New(bundle, game, tracker, announce.Null{})
}

// cardIndex finds the i-th card (0-based) with the given content.
func cardIndex(g *engine.Game, content string, nth int) int {
	seen := 0
	for i, c := range g.Cards {
		if c.Content == content {
			if seen == nth {
				return i
			}
			seen++
		}
	}
	return -1
}

func flipAt(t *testing.T, s *MemoryScreen, idx int) tea.Cmd {
	t.Helper()
	s.cursor = idx
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMemory_MatchingPairStaysUp(t *testing.T) {
	s := testScreen(t)

	if cmd := flipAt(t, s, cardIndex(s.game, "cane", 0)); cmd != nil {
		t.Fatal("first flip must not schedule anything")
	}
	cmd := flipAt(t, s, cardIndex(s.game, "cane", 1))
	if cmd == nil {
		t.Fatal("second flip must schedule a resolve")
	}

	s.Update(resolveMsg{generation: s.game.Generation})
	if !s.lastMatch {
		t.Fatal("equal cards should resolve as a match")
	}
	if s.game.MatchedPairs() != 1 {
		t.Fatalf("MatchedPairs = %d, want 1", s.game.MatchedPairs())
	}
}

func TestMemory_MismatchFlipsBack(t *testing.T) {
	s := testScreen(t)

	flipAt(t, s, cardIndex(s.game, "cane", 0))
	flipAt(t, s, cardIndex(s.game, "gatto", 0))
	s.Update(resolveMsg{generation: s.game.Generation})

	if s.lastMatch {
		t.Fatal("different cards must not match")
	}
	for _, c := range s.game.Cards {
		if c.FaceUp {
			t.Fatal("all cards should be face down after a mismatch")
		}
	}
}

func TestMemory_CompletionReplacesWithSummary(t *testing.T) {
	s := testScreen(t)

	flipAt(t, s, cardIndex(s.game, "cane", 0))
	flipAt(t, s, cardIndex(s.game, "cane", 1))
	s.Update(resolveMsg{generation: s.game.Generation})

	flipAt(t, s, cardIndex(s.game, "gatto", 0))
	flipAt(t, s, cardIndex(s.game, "gatto", 1))
	_, cmd := s.Update(resolveMsg{generation: s.game.Generation})
	if cmd == nil {
		t.Fatal("completing resolve must schedule the finish")
	}

	_, cmd = s.Update(finishMsg{generation: s.game.Generation})
	if cmd == nil {
		t.Fatal("expected a replace command after finishMsg")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("finish must replace the screen with the summary")
	}
}

func TestMemory_StaleResolveIgnored(t *testing.T) {
	s := testScreen(t)

	flipAt(t, s, cardIndex(s.game, "cane", 0))
	flipAt(t, s, cardIndex(s.game, "gatto", 0))

	s.Update(resolveMsg{generation: s.game.Generation - 1})
	if !s.game.Resolving() {
		t.Fatal("stale resolveMsg must not resolve the pair")
	}
}

func TestMemory_RestartReshuffles(t *testing.T) {
	s := testScreen(t)

	flipAt(t, s, 0)
	gen := s.game.Generation
	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})

	if s.game.Generation != gen+1 {
		t.Fatalf("Generation = %d, want %d", s.game.Generation, gen+1)
	}
	for _, c := range s.game.Cards {
		if c.FaceUp || c.Matched {
			t.Fatal("restart should deal a fresh face-down deck")
		}
	}
}

func TestMemory_ViewHidesFaceDownCards(t *testing.T) {
	s := testScreen(t)
	view := s.View(80, 24)

	if strings.Contains(view, "cane") || strings.Contains(view, "gatto") {
		t.Fatal("face-down cards must not reveal their content")
	}
	if !strings.Contains(view, "Coppie: 0 di 2") {
		t.Fatal("view missing the pair counter")
	}

	flipAt(t, s, cardIndex(s.game, "cane", 0))
	if !strings.Contains(s.View(80, 24), "cane") {
		t.Fatal("a flipped card should show its content")
	}
}
