package content

import (
	"os"
	"path/filepath"
	"testing"
)

func loadTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Load("", nil)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return r
}

func TestResolve_KnownBundle(t *testing.T) {
	r := loadTestRegistry(t)

	b := r.Resolve("matematica", "addizione", "1")
	if b == nil {
		t.Fatal("expected bundle for matematica/addizione/1")
	}
	if !b.HasMatching() || !b.HasMemory() || !b.HasTimed() {
		t.Error("expected all three exercise types in the bundle")
	}
	if b.Subject != "matematica" || b.Topic != "addizione" || b.Level != "1" {
		t.Errorf("bundle keys = %s/%s/%s", b.Subject, b.Topic, b.Level)
	}
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		subject, topic string
	}{
		{"Matematica", "Addizione"},
		{"MATEMATICA", "ADDIZIONE"},
		{"  matematica ", "addizione"},
	}
	for _, tt := range tests {
		if r.Resolve(tt.subject, tt.topic, "1") == nil {
			t.Errorf("Resolve(%q, %q, 1) = nil, want bundle", tt.subject, tt.topic)
		}
	}
}

func TestResolve_LevelFallback(t *testing.T) {
	r := loadTestRegistry(t)

	// Level 7 does not exist; the lookup must fall back to level 1.
	fallback := r.Resolve("matematica", "sottrazione", "7")
	level1 := r.Resolve("matematica", "sottrazione", "1")
	if fallback == nil || level1 == nil {
		t.Fatal("expected bundles for both lookups")
	}
	if fallback != level1 {
		t.Error("expected level 7 to resolve to the level 1 bundle")
	}

	// An existing level must not fall back.
	level2 := r.Resolve("matematica", "addizione", "2")
	if level2 == nil {
		t.Fatal("expected bundle for level 2")
	}
	if level2 == r.Resolve("matematica", "addizione", "1") {
		t.Error("level 2 must not resolve to the level 1 bundle")
	}
}

func TestResolve_AbsentSubjectOrTopic(t *testing.T) {
	r := loadTestRegistry(t)

	if b := r.Resolve("storia", "romani", "1"); b != nil {
		t.Errorf("unknown subject: got %+v, want nil", b)
	}
	if b := r.Resolve("matematica", "frazioni", "1"); b != nil {
		t.Errorf("unknown topic: got %+v, want nil", b)
	}
}

func TestSubjectsTopicsLevels(t *testing.T) {
	r := loadTestRegistry(t)

	subjects := r.Subjects()
	if len(subjects) != 3 {
		t.Fatalf("Subjects() = %v, want 3 entries", subjects)
	}
	for i := 1; i < len(subjects); i++ {
		if subjects[i-1] >= subjects[i] {
			t.Errorf("subjects not sorted: %v", subjects)
		}
	}

	topics := r.Topics("matematica")
	if len(topics) != 3 {
		t.Errorf("Topics(matematica) = %v, want 3 entries", topics)
	}
	if got := r.Topics("storia"); got != nil {
		t.Errorf("Topics(storia) = %v, want nil", got)
	}

	levels := r.Levels("matematica", "addizione")
	if len(levels) != 2 {
		t.Errorf("Levels(matematica, addizione) = %v, want 2 entries", levels)
	}
}

func TestLoad_ExtraPackOverridesAndWarns(t *testing.T) {
	dir := t.TempDir()

	valid := `{
		"subject": "geografia",
		"topics": {
			"capitali": {
				"levels": {
					"1": {
						"memory": [
							{"content": "Roma"},
							{"content": "Parigi"}
						]
					}
				}
			}
		}
	}`
	if err := os.WriteFile(filepath.Join(dir, "geografia.json"), []byte(valid), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"subject": ""}`), 0o644); err != nil {
		t.Fatal(err)
	}

	var warned []string
	r, err := Load(dir, func(path string, err error) {
		warned = append(warned, filepath.Base(path))
	})
	if err != nil {
		t.Fatalf("load with extra dir: %v", err)
	}

	if b := r.Resolve("geografia", "capitali", "1"); b == nil || !b.HasMemory() {
		t.Error("expected memory bundle from the extra pack")
	}
	if len(warned) != 1 || warned[0] != "broken.json" {
		t.Errorf("warned = %v, want [broken.json]", warned)
	}
}

func TestValidatePack_RejectsEmptyLists(t *testing.T) {
	raw := `{
		"subject": "test",
		"topics": {
			"t": {
				"levels": {
					"1": {"matching": []}
				}
			}
		}
	}`
	if err := ValidatePack([]byte(raw)); err == nil {
		t.Error("expected validation error for empty matching list")
	}
}

func TestValidatePack_RejectsOutOfRangeFields(t *testing.T) {
	raw := `{
		"subject": "test",
		"topics": {
			"t": {
				"levels": {
					"1": {
						"timed": [
							{"prompt": "p", "options": ["a", "b"], "correct_index": 0, "points": 0, "time_limit_secs": 10}
						]
					}
				}
			}
		}
	}`
	if err := ValidatePack([]byte(raw)); err == nil {
		t.Error("expected validation error for zero points")
	}
}
