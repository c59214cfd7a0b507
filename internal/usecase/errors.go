package usecase

import (
	"fmt"

	"github.com/abhisek/studiq/internal/learning"
)

// ErrPlanNotFound indicates no learning plan exists with the given id.
type ErrPlanNotFound struct {
	PlanID learning.LearningPlanID
}

func (e *ErrPlanNotFound) Error() string {
	return fmt.Sprintf("learning plan %q not found", e.PlanID)
}

// ErrSessionNotFound indicates the plan owns no session with the given id.
type ErrSessionNotFound struct {
	PlanID    learning.LearningPlanID
	SessionID learning.StudySessionID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("study session %q not found in plan %q", e.SessionID, e.PlanID)
}

// ErrQuestionNotInSession indicates the session does not include the
// given question.
type ErrQuestionNotInSession struct {
	SessionID  learning.StudySessionID
	QuestionID learning.QuestionID
}

func (e *ErrQuestionNotInSession) Error() string {
	return fmt.Sprintf("question %q is not part of session %q", e.QuestionID, e.SessionID)
}

// ErrQuestionNotFound indicates the canonical question record is missing
// from the question store.
type ErrQuestionNotFound struct {
	QuestionID learning.QuestionID
}

func (e *ErrQuestionNotFound) Error() string {
	return fmt.Sprintf("question %q not found", e.QuestionID)
}

// ErrKnowledgeUnitNotInPlan indicates the plan does not own the given
// knowledge unit.
type ErrKnowledgeUnitNotInPlan struct {
	PlanID          learning.LearningPlanID
	KnowledgeUnitID learning.KnowledgeUnitID
}

func (e *ErrKnowledgeUnitNotInPlan) Error() string {
	return fmt.Sprintf("knowledge unit %q is not part of plan %q", e.KnowledgeUnitID, e.PlanID)
}

// ErrNoKnowledgeUnitsSelected indicates the focus policy selected nothing
// to study, so no session can be started.
type ErrNoKnowledgeUnitsSelected struct {
	PlanID learning.LearningPlanID
}

func (e *ErrNoKnowledgeUnitsSelected) Error() string {
	return fmt.Sprintf("no knowledge units selected for a session on plan %q", e.PlanID)
}

// ErrNoKnowledgeUnits indicates extraction produced nothing to study, so
// no plan can be created.
type ErrNoKnowledgeUnits struct{}

func (e *ErrNoKnowledgeUnits) Error() string {
	return "no knowledge units could be generated from the documents"
}
