package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchemaDef is the JSON Schema every content pack must satisfy.
// The non-empty list invariant lives here: a game list that is present
// must carry at least one entry.
var packSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subject": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]any{"type": "string"},
		"topics": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"levels": map[string]any{
						"type":                 "object",
						"minProperties":        1,
						"additionalProperties": bundleSchemaDef,
					},
				},
				"required":             []any{"levels"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"subject", "topics"},
	"additionalProperties": false,
}

var bundleSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"matching": map[string]any{
			"type":     "array",
			"minItems": 1,
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
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content": map[string]any{"type": "string", "minLength": 1},
					"icon":    map[string]any{"type": "string"},
				},
				"required":             []any{"content"},
				"additionalProperties": false,
			},
		},
		"timed": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 4,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"correct_index":   map[string]any{"type": "integer", "minimum": 0},
					"points":          map[string]any{"type": "integer", "minimum": 1},
					"time_limit_secs": map[string]any{"type": "integer", "minimum": 3},
				},
				"required":             []any{"prompt", "options", "correct_index", "points", "time_limit_secs"},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
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

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidatePack checks raw pack JSON against the pack schema.
func ValidatePack(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := packSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func packSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Round-trip the definition through encoding/json.
		defBytes, err := json.Marshal(packSchemaDef)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://content-pack.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
