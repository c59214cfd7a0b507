package usecase

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/evaluation"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// AssessQuestionOutcome grades the latest unassessed attempt on a session
// question and attaches the result permanently.
type AssessQuestionOutcome struct {
	plans     store.LearningPlanRepo
	questions store.QuestionRepo
	evaluator evaluation.Service
}

// NewAssessQuestionOutcome creates the use case.
func NewAssessQuestionOutcome(
	plans store.LearningPlanRepo,
	questions store.QuestionRepo,
	evaluator evaluation.Service,
) *AssessQuestionOutcome {
	return &AssessQuestionOutcome{plans: plans, questions: questions, evaluator: evaluator}
}

// Execute grades the most recent ungraded attempt, persists the aggregate
// and returns the assessment. Fails with ErrNoUnassessedAttempt when every
// attempt is already graded.
func (uc *AssessQuestionOutcome) Execute(
	ctx context.Context,
	planID learning.LearningPlanID,
	sessionID learning.StudySessionID,
	questionID learning.QuestionID,
) (learning.AnswerAssessment, error) {
	var zero learning.AnswerAssessment

	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return zero, fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return zero, &ErrPlanNotFound{PlanID: planID}
	}

	session, ok := plan.Session(sessionID)
	if !ok {
		return zero, &ErrSessionNotFound{PlanID: planID, SessionID: sessionID}
	}

	sq, ok := session.Question(questionID)
	if !ok {
		return zero, &ErrQuestionNotInSession{SessionID: sessionID, QuestionID: questionID}
	}

	attempt, ok := sq.LatestUnassessedAttempt()
	if !ok {
		return zero, &learning.ErrNoUnassessedAttempt{QuestionID: questionID}
	}

	question, err := uc.questions.GetByID(ctx, questionID)
	if err != nil {
		return zero, fmt.Errorf("load question: %w", err)
	}
	if question == nil {
		return zero, &ErrQuestionNotFound{QuestionID: questionID}
	}

	assessment, err := uc.evaluator.EvaluateAnswer(ctx, question, attempt.UserAnswer)
	if err != nil {
		return zero, fmt.Errorf("evaluate answer: %w", err)
	}

	if err := sq.AttachAssessment(attempt, assessment); err != nil {
		return zero, err
	}

	if err := uc.plans.Save(ctx, plan); err != nil {
		return zero, fmt.Errorf("save learning plan: %w", err)
	}
	return assessment, nil
}
