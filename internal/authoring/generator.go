// Package authoring generates new content packs with an LLM. The output
// passes the same schema gate as hand-written packs before it reaches
// the packs directory.
package authoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gbianchi/impara/internal/content"
	"github.com/gbianchi/impara/internal/llm"
)

// Config holds generation limits.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation limits.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Request identifies the pack slot to author content for.
type Request struct {
	Subject  string
	Topic    string
	Level    string
	Guidance string // optional free-form instructions for the prompt
}

// GeneratedPack is a validated single-topic pack ready to be written.
type GeneratedPack struct {
	Subject string
	Topic   string
	Level   string
	JSON    []byte
}

// Generator produces content packs using the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces a validated pack for the requested slot.
func (g *Generator) Generate(ctx context.Context, req Request) (*GeneratedPack, error) {
	if err := normalize(&req); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeAuthoring)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      BundleSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var bundle content.Bundle
	if err := json.Unmarshal(resp.Content, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if err := checkBundle(&bundle); err != nil {
		return nil, err
	}

	pack := content.Pack{
		Subject: req.Subject,
		Topics: map[string]content.PackTopic{
			req.Topic: {
				Levels: map[string]*content.Bundle{
					req.Level: &bundle,
				},
			},
		},
	}

	data, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pack: %w", err)
	}
	if err := content.ValidatePack(data); err != nil {
		return nil, fmt.Errorf("generated pack rejected: %w", err)
	}

	return &GeneratedPack{
		Subject: req.Subject,
		Topic:   req.Topic,
		Level:   req.Level,
		JSON:    data,
	}, nil
}

func normalize(req *Request) error {
	req.Subject = strings.ToLower(strings.TrimSpace(req.Subject))
	req.Topic = strings.ToLower(strings.TrimSpace(req.Topic))
	req.Level = strings.ToLower(strings.TrimSpace(req.Level))

	if req.Subject == "" || req.Topic == "" || req.Level == "" {
		return fmt.Errorf("subject, topic and level are all required")
	}
	return nil
}
