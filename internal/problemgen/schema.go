package problemgen

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathplay/internal/llm"
)

var payloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"kind":   map[string]any{"type": "string", "enum": []any{"number", "text", "emoji"}},
		"number": map[string]any{"type": "integer", "minimum": 0},
		"text":   map[string]any{"type": "string"},
	},
	"required": []any{"kind"},
}

// LevelSchema describes the JSON form of a Level. It guards the CLI's JSON
// output so consumers can rely on the shape.
var LevelSchema = &llm.Schema{
	Name:        "mathplay-level",
	Description: "One generated mini-game level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":              map[string]any{"type": "string", "minLength": 1},
			"gameId":          map[string]any{"type": "string"},
			"tier":            map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"mode":            map[string]any{"type": "string", "enum": []any{string(ModeSingleChoice), string(ModeCollection)}},
			"question":        map[string]any{"type": "string", "minLength": 1},
			"target":          map[string]any{"type": "integer", "minimum": 0},
			"backgroundTheme": map[string]any{"type": "string"},
			"hint":            map[string]any{"type": "string"},
			"options": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":           map[string]any{"type": "string", "minLength": 1},
						"value":        payloadSchema,
						"isCorrect":    map[string]any{"type": "boolean"},
						"inSolution":   map[string]any{"type": "boolean"},
						"numericValue": map[string]any{"type": "integer", "minimum": 0},
						"content":      map[string]any{"type": "string"},
						"style":        map[string]any{"type": "string"},
					},
					"required": []any{"id", "value", "isCorrect"},
				},
			},
		},
		"required": []any{"id", "mode", "question", "options"},
	},
}

// TowerSchema describes the JSON form of a TowerLevel.
var TowerSchema = &llm.Schema{
	Name:        "mathplay-tower",
	Description: "One generated tower-stacking level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"target":   map[string]any{"type": "integer", "minimum": 1},
			"blocks":   map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "integer", "minimum": 1}},
			"solution": map[string]any{"type": "array", "items": map[string]any{"type": "integer", "minimum": 1}},
		},
		"required": []any{"target", "blocks"},
	},
}

// EncodeJSON marshals v (a Level or TowerLevel) with indentation and checks
// the result against schema.
func EncodeJSON(v any, schema *llm.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal level: %w", err)
	}
	if err := llm.ValidateJSON(schema, data); err != nil {
		return nil, fmt.Errorf("level JSON does not match %s: %w", schema.Name, err)
	}
	return data, nil
}
