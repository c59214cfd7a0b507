package questiongen

import "github.com/abhisek/studiq/internal/llm"

// questionProperties is the per-question schema shared by the single and
// batch response schemas.
var questionProperties = map[string]any{
	"question_text": map[string]any{
		"type":        "string",
		"description": "The question shown to the learner, self-contained plain text",
	},
	"answer": map[string]any{
		"type":        "string",
		"description": "The correct answer, concise and unambiguous",
	},
	"difficulty_level": map[string]any{
		"type":        "integer",
		"minimum":     1,
		"maximum":     5,
		"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
	},
}

// QuestionSchema defines the JSON schema for single-question responses.
var QuestionSchema = &llm.Schema{
	Name:        "study-question",
	Description: "A single study question with its correct answer",
	Definition: map[string]any{
		"type":                 "object",
		"properties":           questionProperties,
		"required":             []any{"question_text", "answer", "difficulty_level"},
		"additionalProperties": false,
	},
}

// QuestionBatchSchema defines the JSON schema for batch responses.
var QuestionBatchSchema = &llm.Schema{
	Name:        "study-question-batch",
	Description: "A batch of diverse study questions for one knowledge unit",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"properties":           questionProperties,
					"required":             []any{"question_text", "answer", "difficulty_level"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
