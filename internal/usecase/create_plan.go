// Package usecase contains the application orchestrators. Each use case is
// one short transaction over the LearningPlan aggregate: load, mutate in
// memory, save the whole tree back.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/studiq/internal/focus"
	"github.com/abhisek/studiq/internal/kugen"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// defaultMaxPlanUnits caps how many knowledge units a new plan keeps after
// the scope policy ranks the extraction output.
const defaultMaxPlanUnits = 10

// CreateLearningPlan builds a new plan from source documents: extracts
// knowledge units, applies the scope policy, persists the plan.
type CreateLearningPlan struct {
	extractor kugen.Service
	scope     focus.Policy
	plans     store.LearningPlanRepo
	maxUnits  int
}

// NewCreateLearningPlan creates the use case with the default unit cap.
func NewCreateLearningPlan(extractor kugen.Service, scope focus.Policy, plans store.LearningPlanRepo) *CreateLearningPlan {
	return &CreateLearningPlan{
		extractor: extractor,
		scope:     scope,
		plans:     plans,
		maxUnits:  defaultMaxPlanUnits,
	}
}

// Execute extracts knowledge units from the documents and persists a new
// plan owning the selected units. Fails with ErrNoKnowledgeUnits when
// extraction and scoping leave nothing to study.
func (uc *CreateLearningPlan) Execute(ctx context.Context, docs []learning.Document) (*learning.LearningPlan, error) {
	var units []*learning.KnowledgeUnit
	for _, doc := range docs {
		extracted, err := uc.extractor.GenerateKnowledgeUnits(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("extract knowledge units from document %q: %w", doc.ID, err)
		}
		units = append(units, extracted...)
	}

	units = uc.scope.SelectKnowledgeUnits(units, uc.maxUnits)
	if len(units) == 0 {
		return nil, &ErrNoKnowledgeUnits{}
	}

	plan := learning.NewLearningPlan(learning.LearningPlanID(uuid.NewString()), units)
	if err := uc.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("save learning plan: %w", err)
	}
	return plan, nil
}
