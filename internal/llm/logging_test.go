package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gbianchi/impara/internal/store"
)

// capturingEventRepo records appended events for inspection.
type capturingEventRepo struct {
	events []store.LLMRequestEventData
}

func (r *capturingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLoggingProviderRecordsBodies(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"titolo":"frazioni"}`),
		Usage:   Usage{InputTokens: 50, OutputTokens: 200},
	})
	repo := &capturingEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "authoring")
	req := Request{
		System:   "Sei un autore di contenuti didattici.",
		Messages: []Message{{Role: "user", Content: "Genera un pacchetto sulle frazioni"}},
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp == nil {
		t.Fatal("expected response")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}

	ev := repo.events[0]
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.Purpose != "authoring" {
		t.Errorf("purpose = %q, want %q", ev.Purpose, "authoring")
	}
	if ev.InputTokens != 50 || ev.OutputTokens != 200 {
		t.Errorf("tokens = %d/%d, want 50/200", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "[system]") ||
		!strings.Contains(ev.RequestBody, "frazioni") {
		t.Errorf("request body missing prompt content: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"titolo":"frazioni"}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLoggingProviderRecordsFailures(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Err: errors.New("rate limited"),
	})
	repo := &capturingEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "ciao"}},
	})
	if err == nil {
		t.Fatal("expected error from inner provider")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}

	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", ev.ErrorMessage)
	}
	if ev.ResponseBody != "" {
		t.Errorf("response body = %q, want empty", ev.ResponseBody)
	}
}
