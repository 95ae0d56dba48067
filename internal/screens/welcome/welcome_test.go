package welcome

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gbianchi/impara/internal/router"
	"github.com/gbianchi/impara/internal/screen"
	"github.com/gbianchi/impara/internal/store"
)

// mockPrefsRepo implements store.PrefsRepo in memory.
type mockPrefsRepo struct {
	saved *store.PreferenceData
}

func (m *mockPrefsRepo) Load(context.Context) (*store.PreferenceData, error) {
	if m.saved == nil {
		return &store.PreferenceData{}, nil
	}
	cp := *m.saved
	return &cp, nil
}

func (m *mockPrefsRepo) Save(_ context.Context, prefs *store.PreferenceData) error {
	cp := *prefs
	m.saved = &cp
	return nil
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd { return nil }

func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (stubScreen) View(int, int) string { return "" }

func (stubScreen) Title() string { return "stub" }

func newTestWelcome() (*WelcomeScreen, *mockPrefsRepo) {
	prefs := &mockPrefsRepo{}
	w := New(prefs, func(string) screen.Screen { return stubScreen{} })
	return w, prefs
}

func typeName(w *WelcomeScreen, name string) screen.Screen {
	var s screen.Screen = w
	for _, r := range name {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func TestWelcome_EmptyNameRejected(t *testing.T) {
	w, prefs := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for empty name")
	}
	if w.errMsg == "" {
		t.Error("expected a validation message for empty name")
	}
	if prefs.saved != nil {
		t.Error("empty name was saved")
	}
}

func TestWelcome_SavesNameAndReplaces(t *testing.T) {
	w, prefs := newTestWelcome()
	typeName(w, "Giulia")

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected save command on Enter")
	}

	msg := cmd()
	saved, ok := msg.(savedMsg)
	if !ok {
		t.Fatalf("msg = %T, want savedMsg", msg)
	}
	if saved.err != nil {
		t.Fatalf("save error: %v", saved.err)
	}
	if prefs.saved == nil || prefs.saved.PlayerName != "Giulia" {
		t.Errorf("saved prefs = %+v, want PlayerName Giulia", prefs.saved)
	}

	// Delivering the saved message must produce the replace command.
	_, cmd = w.Update(saved)
	if cmd == nil {
		t.Fatal("expected replace command after save")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("msg = %T, want router.ReplaceScreenMsg", cmd())
	}
}

func TestWelcome_ViewShowsPromptAndError(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(80, 24)
	if view == "" {
		t.Fatal("empty view")
	}

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view = w.View(80, 24)
	if view == "" {
		t.Fatal("empty view with error message")
	}
}
