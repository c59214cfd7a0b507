package usecase

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/focus"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/questiongen"
	"github.com/abhisek/studiq/internal/store"
)

const (
	defaultMaxQuestions    = 6
	defaultMaxSessionUnits = 3
)

// StartStudySession starts a new session on a plan: the focus policy picks
// which units to study, the generator produces a batch of questions spread
// across them, and the session is registered on the plan.
type StartStudySession struct {
	plans     store.LearningPlanRepo
	policy    focus.Policy
	generator questiongen.Service
	questions store.QuestionRepo

	maxQuestions int
	maxUnits     int
}

// NewStartStudySession creates the use case with default session sizing.
func NewStartStudySession(
	plans store.LearningPlanRepo,
	policy focus.Policy,
	generator questiongen.Service,
	questions store.QuestionRepo,
) *StartStudySession {
	return &StartStudySession{
		plans:        plans,
		policy:       policy,
		generator:    generator,
		questions:    questions,
		maxQuestions: defaultMaxQuestions,
		maxUnits:     defaultMaxSessionUnits,
	}
}

// WithLimits overrides the session sizing. Zero or negative values keep
// the current setting.
func (uc *StartStudySession) WithLimits(maxQuestions, maxUnits int) *StartStudySession {
	if maxQuestions > 0 {
		uc.maxQuestions = maxQuestions
	}
	if maxUnits > 0 {
		uc.maxUnits = maxUnits
	}
	return uc
}

// Execute starts a session on the given plan and persists the whole
// aggregate. Question counts are split evenly across the focused units,
// with the remainder going to the highest-ranked ones.
func (uc *StartStudySession) Execute(ctx context.Context, planID learning.LearningPlanID) (*learning.StudySession, error) {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return nil, &ErrPlanNotFound{PlanID: planID}
	}

	units := uc.policy.SelectKnowledgeUnits(plan.KnowledgeUnits, uc.maxUnits)
	if len(units) == 0 {
		return nil, &ErrNoKnowledgeUnitsSelected{PlanID: planID}
	}

	kuIDs := make([]learning.KnowledgeUnitID, len(units))
	for i, ku := range units {
		kuIDs[i] = ku.ID
	}

	session, err := plan.StartFocusedSession(kuIDs, uc.maxQuestions)
	if err != nil {
		return nil, err
	}

	perUnit := uc.maxQuestions / len(units)
	remainder := uc.maxQuestions % len(units)

	for i, ku := range units {
		count := perUnit
		if i < remainder {
			count++
		}
		if count == 0 {
			continue
		}

		batch, err := uc.generator.GenerateQuestionsBatch(ctx, ku, count)
		if err != nil {
			return nil, fmt.Errorf("generate questions for unit %q: %w", ku.ID, err)
		}
		for _, q := range batch {
			if err := uc.questions.Save(ctx, q); err != nil {
				return nil, fmt.Errorf("save question %q: %w", q.ID, err)
			}
			if err := session.RegisterQuestion(q.ID, q.KnowledgeUnitID); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save learning plan: %w", err)
	}
	return session, nil
}
