package usecase

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// SubmitAnswer records a learner's answer to a session question. It does
// not evaluate correctness; grading is a separate step.
type SubmitAnswer struct {
	plans store.LearningPlanRepo
}

// NewSubmitAnswer creates the use case.
func NewSubmitAnswer(plans store.LearningPlanRepo) *SubmitAnswer {
	return &SubmitAnswer{plans: plans}
}

// Execute appends an answer attempt to the session question and persists
// the aggregate.
func (uc *SubmitAnswer) Execute(
	ctx context.Context,
	planID learning.LearningPlanID,
	sessionID learning.StudySessionID,
	questionID learning.QuestionID,
	userAnswer learning.Answer,
) error {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return &ErrPlanNotFound{PlanID: planID}
	}

	session, ok := plan.Session(sessionID)
	if !ok {
		return &ErrSessionNotFound{PlanID: planID, SessionID: sessionID}
	}

	sq, ok := session.Question(questionID)
	if !ok {
		return &ErrQuestionNotInSession{SessionID: sessionID, QuestionID: questionID}
	}

	sq.SubmitAnswer(userAnswer)

	if err := uc.plans.Save(ctx, plan); err != nil {
		return fmt.Errorf("save learning plan: %w", err)
	}
	return nil
}
