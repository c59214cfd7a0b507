package mastery

import (
	"math"

	"github.com/abhisek/studiq/internal/learning"
)

// retryPenalty is the score deduction per additional assessed attempt
// before the final correct one.
const retryPenalty = 0.2

// Service updates the mastery level of a knowledge unit from session
// question outcomes.
type Service interface {
	// UpdateMastery recomputes ku's mastery level from the given session
	// questions (already filtered to this unit across all sessions) and
	// returns the updated unit.
	UpdateMastery(ku *learning.KnowledgeUnit, sessionQuestions []*learning.SessionQuestion) *learning.KnowledgeUnit
}

// QuestionBased computes mastery from per-question graded outcomes.
//
// Scoring rules:
//   - each question with at least one assessed attempt is worth one point
//   - the latest assessed attempt decides the outcome; retries before an
//     eventual correct answer shave 0.2 off the point, floored at zero
//   - incorrect outcomes score zero but still count toward the maximum
//   - questions with no assessed attempt are ignored entirely
type QuestionBased struct{}

// NewQuestionBased creates the question-outcome mastery service.
func NewQuestionBased() *QuestionBased {
	return &QuestionBased{}
}

func (s *QuestionBased) UpdateMastery(
	ku *learning.KnowledgeUnit,
	sessionQuestions []*learning.SessionQuestion,
) *learning.KnowledgeUnit {
	ku.MasteryLevel = ComputeMastery(sessionQuestions)
	return ku
}

// ComputeMastery maps session question outcomes to a mastery score in [0, 1].
// Pure function of its input.
func ComputeMastery(sessionQuestions []*learning.SessionQuestion) float64 {
	if len(sessionQuestions) == 0 {
		return 0.0
	}

	var score, maxScore float64

	for _, sq := range sessionQuestions {
		assessed := sq.AssessedAttempts()
		if len(assessed) == 0 {
			// Unanswered for scoring purposes: neither penalized nor rewarded.
			continue
		}

		maxScore += 1.0

		latest := assessed[len(assessed)-1]
		if latest.Assessment.IsCorrect {
			score += math.Max(0.0, 1.0-retryPenalty*float64(len(assessed)-1))
		}
	}

	if maxScore == 0 {
		return 0.0
	}
	return math.Min(1.0, score/maxScore)
}
