package usecase

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/mastery"
	"github.com/abhisek/studiq/internal/store"
)

// UpdateKnowledgeUnitMastery recomputes a knowledge unit's mastery level
// from graded session outcomes across all of the plan's sessions.
type UpdateKnowledgeUnitMastery struct {
	plans   store.LearningPlanRepo
	mastery mastery.Service
}

// NewUpdateKnowledgeUnitMastery creates the use case.
func NewUpdateKnowledgeUnitMastery(plans store.LearningPlanRepo, svc mastery.Service) *UpdateKnowledgeUnitMastery {
	return &UpdateKnowledgeUnitMastery{plans: plans, mastery: svc}
}

// Execute recomputes mastery from every non-pending session question
// matching the unit, persists the aggregate and returns the updated unit.
func (uc *UpdateKnowledgeUnitMastery) Execute(
	ctx context.Context,
	planID learning.LearningPlanID,
	kuID learning.KnowledgeUnitID,
) (*learning.KnowledgeUnit, error) {
	plan, err := uc.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load learning plan: %w", err)
	}
	if plan == nil {
		return nil, &ErrPlanNotFound{PlanID: planID}
	}

	ku, ok := plan.KnowledgeUnit(kuID)
	if !ok {
		return nil, &ErrKnowledgeUnitNotInPlan{PlanID: planID, KnowledgeUnitID: kuID}
	}

	var outcomes []*learning.SessionQuestion
	for _, session := range plan.Sessions {
		for _, sq := range session.OrderedQuestions() {
			if sq.KnowledgeUnitID == kuID && sq.Status() != learning.StatusPending {
				outcomes = append(outcomes, sq)
			}
		}
	}

	uc.mastery.UpdateMastery(ku, outcomes)

	if err := uc.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save learning plan: %w", err)
	}
	return ku, nil
}
