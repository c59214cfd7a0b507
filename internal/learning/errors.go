package learning

import "fmt"

// ErrPlanCompleted indicates an attempt to start a session on a completed plan.
type ErrPlanCompleted struct {
	PlanID LearningPlanID
}

func (e *ErrPlanCompleted) Error() string {
	return fmt.Sprintf("learning plan %q is already completed", e.PlanID)
}

// ErrSessionFull indicates a session cannot accept more questions, either
// because it reached its question capacity or because it was ended early.
type ErrSessionFull struct {
	SessionID StudySessionID
}

func (e *ErrSessionFull) Error() string {
	return fmt.Sprintf("study session %q cannot accept more questions", e.SessionID)
}

// ErrAttemptMismatch indicates an assessment was attached to an attempt
// that is not part of the session question.
type ErrAttemptMismatch struct {
	QuestionID QuestionID
}

func (e *ErrAttemptMismatch) Error() string {
	return fmt.Sprintf("attempt not found in session question %q", e.QuestionID)
}

// ErrNoUnassessedAttempt indicates an assessment was requested for a question
// with no attempt awaiting grading.
type ErrNoUnassessedAttempt struct {
	QuestionID QuestionID
}

func (e *ErrNoUnassessedAttempt) Error() string {
	return fmt.Sprintf("session question %q has no unassessed attempt", e.QuestionID)
}
