package authoring

import "github.com/gbianchi/impara/internal/llm"

// BundleSchema defines the JSON schema for LLM pack generation responses.
var BundleSchema = &llm.Schema{
	Name:        "game-bundle",
	Description: "A bundle of mini-game exercises for one subject, topic and level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"matching": map[string]any{
				"type":        "array",
				"minItems":    4,
				"description": "Left/right association pairs for the matching game",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"left":  itemSchemaDef,
						"right": itemSchemaDef,
					},
					"required":             []any{"left", "right"},
					"additionalProperties": false,
				},
			},
			"memory": map[string]any{
				"type":        "array",
				"minItems":    4,
				"description": "Card faces for the memory game; each appears twice in the deck",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"content": map[string]any{"type": "string", "minLength": 1},
						"icon":    map[string]any{"type": "string"},
					},
					"required":             []any{"content", "icon"},
					"additionalProperties": false,
				},
			},
			"timed": map[string]any{
				"type":        "array",
				"minItems":    5,
				"description": "Multiple-choice questions for the timed challenge",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":        "array",
							"minItems":    2,
							"maxItems":    4,
							"items":       map[string]any{"type": "string", "minLength": 1},
							"description": "Answer options; exactly one is correct",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the correct option",
						},
						"points": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Base points for a correct answer",
						},
						"time_limit_secs": map[string]any{
							"type":        "integer",
							"minimum":     3,
							"description": "Seconds allowed to answer",
						},
					},
					"required":             []any{"prompt", "options", "correct_index", "points", "time_limit_secs"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"matching", "memory", "timed"},
		"additionalProperties": false,
	},
}

var itemSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text": map[string]any{"type": "string", "minLength": 1},
		"icon": map[string]any{"type": "string"},
	},
	"required":             []any{"text"},
	"additionalProperties": false,
}
