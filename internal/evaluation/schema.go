package evaluation

import "github.com/abhisek/studiq/internal/llm"

// AssessmentSchema defines the JSON schema for LLM answer-grading responses.
var AssessmentSchema = &llm.Schema{
	Name:        "answer-assessment",
	Description: "Judgement of a learner's answer against the canonical answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the learner's answer is semantically correct",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Brief explanation of the judgement, addressed to the learner",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the judgement (0.0 to 1.0)",
			},
		},
		"required":             []any{"is_correct", "explanation", "confidence"},
		"additionalProperties": false,
	},
}
