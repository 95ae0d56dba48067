package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Thresholds.CompletionRatio != 0.8 {
		t.Errorf("completion ratio = %v, want 0.8", cfg.Thresholds.CompletionRatio)
	}
	if cfg.Thresholds.SpeedBonusSeconds != 120 {
		t.Errorf("speed bonus seconds = %d, want 120", cfg.Thresholds.SpeedBonusSeconds)
	}
	if cfg.Thresholds.SubjectMasteryCount != 5 || cfg.Thresholds.PersistenceCount != 10 {
		t.Errorf("mastery/persistence = %d/%d, want 5/10",
			cfg.Thresholds.SubjectMasteryCount, cfg.Thresholds.PersistenceCount)
	}
	if cfg.TimedQuestions != 10 {
		t.Errorf("timed questions = %d, want 10", cfg.TimedQuestions)
	}
	if cfg.PacksDir == "" {
		t.Error("packs dir is empty")
	}
}

func TestLoad_ConfigFileOverrides(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dir := filepath.Join(configHome, "impara")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := []byte("thresholds:\n  completion_ratio: 0.6\ntimed:\n  questions: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Thresholds.CompletionRatio != 0.6 {
		t.Errorf("completion ratio = %v, want 0.6", cfg.Thresholds.CompletionRatio)
	}
	if cfg.TimedQuestions != 5 {
		t.Errorf("timed questions = %d, want 5", cfg.TimedQuestions)
	}
	// Untouched keys keep their defaults.
	if cfg.Thresholds.PersistenceCount != 10 {
		t.Errorf("persistence = %d, want 10", cfg.Thresholds.PersistenceCount)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("IMPARA_TIMED_QUESTIONS", "15")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TimedQuestions != 15 {
		t.Errorf("timed questions = %d, want 15 from env", cfg.TimedQuestions)
	}
}

func TestLoad_RejectsBadRatio(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("IMPARA_THRESHOLDS_COMPLETION_RATIO", "1.5")

	if _, err := Load(nil); err == nil {
		t.Fatal("completion ratio 1.5 accepted, want error")
	}
}
