package kugen

import "github.com/abhisek/studiq/internal/llm"

// ExtractionSchema defines the JSON schema for knowledge-unit extraction
// responses. Facts and skills reference claims by the integer ids the model
// assigned in the claims list.
var ExtractionSchema = &llm.Schema{
	Name:        "knowledge-extraction",
	Description: "Claims, facts and skills extracted from a study document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"claims": map[string]any{
				"type":        "array",
				"description": "Atomic verifiable statements found in the document",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Local id used by facts and skills to reference this claim",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The claim restated as a single self-contained sentence",
						},
					},
					"required":             []any{"id", "text"},
					"additionalProperties": false,
				},
			},
			"facts": map[string]any{
				"type":        "array",
				"description": "Single-claim knowledge worth memorizing",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{
							"type": "string",
						},
						"target_claim_id": map[string]any{
							"type": "integer",
						},
					},
					"required":             []any{"description", "target_claim_id"},
					"additionalProperties": false,
				},
			},
			"skills": map[string]any{
				"type":        "array",
				"description": "Abilities that combine two or more claims",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{
							"type": "string",
						},
						"source_claim_ids": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "integer"},
							"minItems": 1,
						},
					},
					"required":             []any{"description", "source_claim_ids"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"claims", "facts", "skills"},
		"additionalProperties": false,
	},
}
