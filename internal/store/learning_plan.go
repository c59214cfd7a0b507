package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/ent"
	"github.com/abhisek/studiq/ent/learningplan"
	"github.com/abhisek/studiq/internal/learning"
)

// planRepo implements LearningPlanRepo using the ent client. One row per
// aggregate; Save replaces the whole JSON document so every write is
// all-or-nothing from the caller's perspective.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Save(ctx context.Context, plan *learning.LearningPlan) error {
	data, err := encodePlan(plan)
	if err != nil {
		return fmt.Errorf("marshal plan %s: %w", plan.ID, err)
	}

	err = r.client.LearningPlan.Create().
		SetPlanID(string(plan.ID)).
		SetData(data).
		SetCreatedAt(plan.CreatedAt).
		SetNillableCompletedAt(plan.CompletedAt).
		OnConflictColumns(learningplan.FieldPlanID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save plan %s: %w", plan.ID, err)
	}
	return nil
}

func (r *planRepo) GetByID(ctx context.Context, id learning.LearningPlanID) (*learning.LearningPlan, error) {
	row, err := r.client.LearningPlan.Query().
		Where(learningplan.PlanID(string(id))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan %s: %w", id, err)
	}

	plan, err := decodePlan(row.Data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal plan %s: %w", id, err)
	}
	return plan, nil
}

func (r *planRepo) ListActive(ctx context.Context) ([]*learning.LearningPlan, error) {
	rows, err := r.client.LearningPlan.Query().
		Where(learningplan.CompletedAtIsNil()).
		Order(ent.Asc(learningplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active plans: %w", err)
	}

	plans := make([]*learning.LearningPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := decodePlan(row.Data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal plan %s: %w", row.PlanID, err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *planRepo) Delete(ctx context.Context, id learning.LearningPlanID) error {
	_, err := r.client.LearningPlan.Delete().
		Where(learningplan.PlanID(string(id))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	return nil
}
