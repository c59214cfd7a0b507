package usecase

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// PlanLifecycle completes and deletes learning plans.
type PlanLifecycle struct {
	plans store.LearningPlanRepo
}

// NewPlanLifecycle creates the lifecycle use cases.
func NewPlanLifecycle(plans store.LearningPlanRepo) *PlanLifecycle {
	return &PlanLifecycle{plans: plans}
}

// Complete marks the plan as completed. Idempotent: completing an already
// completed plan keeps the original completion time.
func (uc *PlanLifecycle) Complete(ctx context.Context, planID learning.LearningPlanID) (*learning.LearningPlan, error) {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return nil, &ErrPlanNotFound{PlanID: planID}
	}

	plan.Complete()

	if err := uc.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save learning plan: %w", err)
	}
	return plan, nil
}

// Delete removes the plan and all owned sessions. Deleting a missing plan
// fails with ErrPlanNotFound.
func (uc *PlanLifecycle) Delete(ctx context.Context, planID learning.LearningPlanID) error {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return &ErrPlanNotFound{PlanID: planID}
	}
	if err := uc.plans.Delete(ctx, planID); err != nil {
		return fmt.Errorf("delete learning plan: %w", err)
	}
	return nil
}
