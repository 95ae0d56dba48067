package authoring

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/llm"
)

// goodBundle returns a bundle that passes all structural checks.
func goodBundle() map[string]any {
	matching := []map[string]any{}
	for _, p := range [][2]string{{"2 + 2", "4"}, {"3 + 1", "4"}, {"5 + 0", "5"}, {"1 + 1", "2"}} {
		matching = append(matching, map[string]any{
			"left":  map[string]any{"text": p[0]},
			"right": map[string]any{"text": p[1]},
		})
	}
	memory := []map[string]any{}
	for _, c := range []string{"gatto", "cane", "pesce", "rana"} {
		memory = append(memory, map[string]any{"content": c, "icon": ""})
	}
	timed := []map[string]any{}
	for _, p := range []string{"2+2?", "3+3?", "4+4?", "5+5?", "6+6?"} {
		timed = append(timed, map[string]any{
			"prompt":          p,
			"options":         []string{"a", "b", "c"},
			"correct_index":   1,
			"points":          10,
			"time_limit_secs": 15,
		})
	}
	return map[string]any{"matching": matching, "memory": memory, "timed": timed}
}

func mockResponse(t *testing.T, bundle map[string]any) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(bundle)
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: raw}
}

func TestGenerate_ProducesValidPack(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, goodBundle()))
	g := New(provider, DefaultConfig())

	pack, err := g.Generate(context.Background(), Request{
		Subject: "Matematica", Topic: "Addizione", Level: "1",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if pack.Subject != "matematica" || pack.Topic != "addizione" {
		t.Errorf("keys = %s/%s, want lowercased", pack.Subject, pack.Topic)
	}

	// The pack must round-trip through the loader's own gate.
	if err := content.ValidatePack(pack.JSON); err != nil {
		t.Errorf("generated pack fails pack validation: %v", err)
	}

	var parsed content.Pack
	if err := json.Unmarshal(pack.JSON, &parsed); err != nil {
		t.Fatalf("unmarshal generated pack: %v", err)
	}
	bundle := parsed.Topics["addizione"].Levels["1"]
	if bundle == nil {
		t.Fatal("generated pack missing addizione level 1")
	}
	if len(bundle.Matching) != 4 || len(bundle.Memory) != 4 || len(bundle.Timed) != 5 {
		t.Errorf("bundle sizes = %d/%d/%d", len(bundle.Matching), len(bundle.Memory), len(bundle.Timed))
	}
}

func TestGenerate_SendsSchemaAndPrompt(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, goodBundle()))
	g := New(provider, DefaultConfig())

	_, err := g.Generate(context.Background(), Request{
		Subject: "scienze", Topic: "stagioni", Level: "2", Guidance: "focus on autumn",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(provider.Calls))
	}
	call := provider.Calls[0]
	if call.Schema != BundleSchema {
		t.Error("request did not carry the bundle schema")
	}
	msg := call.Messages[0].Content
	for _, want := range []string{"scienze", "stagioni", "focus on autumn"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_RejectsMissingFields(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())
	if _, err := g.Generate(context.Background(), Request{Subject: "matematica"}); err == nil {
		t.Fatal("missing topic and level accepted")
	}
}

func TestGenerate_RejectsStructuralDefects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"too few matching pairs", func(b map[string]any) {
			b["matching"] = b["matching"].([]map[string]any)[:2]
		}},
		{"too few timed questions", func(b map[string]any) {
			b["timed"] = b["timed"].([]map[string]any)[:3]
		}},
		{"correct index out of range", func(b map[string]any) {
			b["timed"].([]map[string]any)[0]["correct_index"] = 7
		}},
		{"duplicate prompt", func(b map[string]any) {
			b["timed"].([]map[string]any)[1]["prompt"] = "2+2?"
		}},
		{"duplicate memory face", func(b map[string]any) {
			b["memory"].([]map[string]any)[1]["content"] = "gatto"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := goodBundle()
			tt.mutate(bundle)
			g := New(llm.NewMockProvider(mockResponse(t, bundle)), DefaultConfig())

			_, err := g.Generate(context.Background(), Request{
				Subject: "matematica", Topic: "addizione", Level: "1",
			})
			if err == nil {
				t.Fatal("defective bundle accepted")
			}
		})
	}
}

func TestWritePack(t *testing.T) {
	provider := llm.NewMockProvider(mockResponse(t, goodBundle()))
	g := New(provider, DefaultConfig())

	pack, err := g.Generate(context.Background(), Request{
		Subject: "matematica", Topic: "addizione", Level: "1",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "packs")
	path, err := WritePack(dir, pack)
	if err != nil {
		t.Fatalf("write pack: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if err := content.ValidatePack(raw); err != nil {
		t.Errorf("written pack fails validation: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "matematica-addizione-1-") {
		t.Errorf("pack filename = %s", filepath.Base(path))
	}
}
