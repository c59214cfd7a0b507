// Package evaluation grades learner answers against a question's canonical
// answer using an LLM judge.
package evaluation

import (
	"context"

	"github.com/abhisek/studiq/internal/learning"
)

// Service judges whether a learner's answer to a question is correct.
type Service interface {
	// EvaluateAnswer grades the given answer against the question's
	// canonical answer. Implementations never fail open: any judging
	// error that cannot be attributed to the transport yields an
	// incorrect assessment rather than a false positive.
	EvaluateAnswer(ctx context.Context, question *learning.Question, answer learning.Answer) (learning.AnswerAssessment, error)
}
