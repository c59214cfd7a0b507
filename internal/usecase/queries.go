package usecase

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// Queries bundles the read-side operations. They load the aggregate and
// return it as-is; no mutation, no save.
type Queries struct {
	plans store.LearningPlanRepo
}

// NewQueries creates the read-side use cases.
func NewQueries(plans store.LearningPlanRepo) *Queries {
	return &Queries{plans: plans}
}

// GetLearningPlan returns the full aggregate for the given id.
func (q *Queries) GetLearningPlan(ctx context.Context, planID learning.LearningPlanID) (*learning.LearningPlan, error) {
	plan, err := q.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return nil, &ErrPlanNotFound{PlanID: planID}
	}
	return plan, nil
}

// ListLearningPlans returns all active (non-completed) plans.
func (q *Queries) ListLearningPlans(ctx context.Context) ([]*learning.LearningPlan, error) {
	plans, err := q.plans.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learning plans: %w", err)
	}
	return plans, nil
}

// GetStudySession returns one session of a plan.
func (q *Queries) GetStudySession(
	ctx context.Context,
	planID learning.LearningPlanID,
	sessionID learning.StudySessionID,
) (*learning.StudySession, error) {
	plan, err := q.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return nil, &ErrPlanNotFound{PlanID: planID}
	}

	session, ok := plan.Session(sessionID)
	if !ok {
		return nil, &ErrSessionNotFound{PlanID: planID, SessionID: sessionID}
	}
	return session, nil
}
