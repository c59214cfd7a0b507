package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/studiq/internal/focus"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// stubExtractor returns fixed units per document id.
type stubExtractor struct {
	units map[learning.DocumentID][]*learning.KnowledgeUnit
	err   error
}

func (e *stubExtractor) GenerateKnowledgeUnits(_ context.Context, doc learning.Document) ([]*learning.KnowledgeUnit, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.units[doc.ID], nil
}

func TestCreateLearningPlan(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	extractor := &stubExtractor{units: map[learning.DocumentID][]*learning.KnowledgeUnit{
		"doc-1": {
			learning.NewFactKnowledge("ku-1", "Fact one", learning.Claim{Text: "A.", DocID: "doc-1"}),
		},
		"doc-2": {
			learning.NewSkillKnowledge("ku-2", "Skill one", []learning.Claim{{Text: "B.", DocID: "doc-2"}}),
		},
	}}

	uc := NewCreateLearningPlan(extractor, focus.Identity{}, plans)
	plan, err := uc.Execute(context.Background(), []learning.Document{
		{ID: "doc-1", Text: "first"},
		{ID: "doc-2", Text: "second"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if plan.ID == "" {
		t.Error("plan must get a generated id")
	}
	if len(plan.KnowledgeUnits) != 2 {
		t.Fatalf("plan owns %d units, want 2", len(plan.KnowledgeUnits))
	}
	if plan.KnowledgeUnits[0].ID != "ku-1" || plan.KnowledgeUnits[1].ID != "ku-2" {
		t.Error("units out of document order")
	}

	reloaded, err := plans.GetByID(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded == nil {
		t.Fatal("plan not persisted")
	}
}

func TestCreateLearningPlan_NoUnits(t *testing.T) {
	uc := NewCreateLearningPlan(&stubExtractor{}, focus.Identity{}, store.NewMemoryPlanRepo())

	_, err := uc.Execute(context.Background(), []learning.Document{{ID: "doc-1", Text: "empty"}})
	var noUnits *ErrNoKnowledgeUnits
	if !errors.As(err, &noUnits) {
		t.Fatalf("err = %v, want ErrNoKnowledgeUnits", err)
	}
}

func TestCreateLearningPlan_ExtractorError(t *testing.T) {
	uc := NewCreateLearningPlan(&stubExtractor{err: errors.New("model offline")},
		focus.Identity{}, store.NewMemoryPlanRepo())

	if _, err := uc.Execute(context.Background(), []learning.Document{{ID: "doc-1"}}); err == nil {
		t.Fatal("expected extractor error to propagate")
	}
}
