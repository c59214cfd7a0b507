package questiongen

import (
	"context"

	"github.com/abhisek/studiq/internal/learning"
)

// Service produces questions for knowledge units using an LLM provider.
type Service interface {
	// GenerateNextQuestion produces a single question for the unit.
	GenerateNextQuestion(ctx context.Context, ku *learning.KnowledgeUnit) (*learning.Question, error)

	// GenerateQuestionsBatch produces up to count diverse questions for
	// the unit. May return fewer if the unit supports fewer distinct
	// questions.
	GenerateQuestionsBatch(ctx context.Context, ku *learning.KnowledgeUnit, count int) ([]*learning.Question, error)
}
