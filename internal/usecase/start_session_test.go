package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/studiq/internal/focus"
	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/store"
)

// stubGenerator produces deterministic questions and records batch sizes.
type stubGenerator struct {
	batches map[learning.KnowledgeUnitID]int
	err     error
	seq     int
}

func newStubGenerator() *stubGenerator {
	return &stubGenerator{batches: make(map[learning.KnowledgeUnitID]int)}
}

func (g *stubGenerator) GenerateNextQuestion(ctx context.Context, ku *learning.KnowledgeUnit) (*learning.Question, error) {
	qs, err := g.GenerateQuestionsBatch(ctx, ku, 1)
	if err != nil {
		return nil, err
	}
	return qs[0], nil
}

func (g *stubGenerator) GenerateQuestionsBatch(_ context.Context, ku *learning.KnowledgeUnit, count int) ([]*learning.Question, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.batches[ku.ID] += count
	out := make([]*learning.Question, count)
	for i := range out {
		g.seq++
		out[i] = &learning.Question{
			ID:              learning.QuestionID(fmt.Sprintf("q-%d", g.seq)),
			Text:            fmt.Sprintf("Question %d about %s?", g.seq, ku.Description),
			CorrectAnswer:   "42",
			Difficulty:      learning.Difficulty{Level: 2},
			KnowledgeUnitID: ku.ID,
		}
	}
	return out, nil
}

func planWithUnits(t *testing.T, repo store.LearningPlanRepo, n int) *learning.LearningPlan {
	t.Helper()
	units := make([]*learning.KnowledgeUnit, n)
	for i := range units {
		units[i] = learning.NewFactKnowledge(
			learning.KnowledgeUnitID(fmt.Sprintf("ku-%d", i)),
			fmt.Sprintf("Unit %d", i),
			learning.Claim{Text: fmt.Sprintf("Claim %d.", i), DocID: "doc-1"},
		)
	}
	plan := learning.NewLearningPlan("plan-1", units)
	if err := repo.Save(context.Background(), plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	return plan
}

func TestStartStudySession(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	gen := newStubGenerator()
	planWithUnits(t, plans, 3)

	uc := NewStartStudySession(plans, focus.Identity{}, gen, questions)
	session, err := uc.Execute(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(session.Questions) != 6 {
		t.Errorf("registered %d questions, want 6", len(session.Questions))
	}
	if len(session.KnowledgeUnitIDs) != 3 {
		t.Errorf("session scoped to %d units, want 3", len(session.KnowledgeUnitIDs))
	}

	// 6 questions over 3 units: 2 each.
	for _, kuID := range []learning.KnowledgeUnitID{"ku-0", "ku-1", "ku-2"} {
		if gen.batches[kuID] != 2 {
			t.Errorf("unit %s got %d questions, want 2", kuID, gen.batches[kuID])
		}
	}

	// Every generated question is in the canonical store.
	all, err := questions.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("question store has %d questions, want 6", len(all))
	}

	// The aggregate was persisted with the new session attached.
	reloaded, err := plans.GetByID(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	persisted, ok := reloaded.Session(session.ID)
	if !ok {
		t.Fatal("session not persisted on the plan")
	}
	if len(persisted.OrderedQuestions()) != 6 {
		t.Errorf("persisted session has %d questions, want 6", len(persisted.OrderedQuestions()))
	}
}

func TestStartStudySession_RemainderGoesToFirstUnits(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	gen := newStubGenerator()
	planWithUnits(t, plans, 4)

	uc := NewStartStudySession(plans, focus.Identity{}, gen, store.NewMemoryQuestionRepo()).
		WithLimits(6, 4)
	if _, err := uc.Execute(context.Background(), "plan-1"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// 6 questions over 4 units: 2, 2, 1, 1.
	want := map[learning.KnowledgeUnitID]int{"ku-0": 2, "ku-1": 2, "ku-2": 1, "ku-3": 1}
	for kuID, n := range want {
		if gen.batches[kuID] != n {
			t.Errorf("unit %s got %d questions, want %d", kuID, gen.batches[kuID], n)
		}
	}
}

func TestStartStudySession_PlanNotFound(t *testing.T) {
	uc := NewStartStudySession(store.NewMemoryPlanRepo(), focus.Identity{}, newStubGenerator(), store.NewMemoryQuestionRepo())

	_, err := uc.Execute(context.Background(), "nope")
	var notFound *ErrPlanNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrPlanNotFound", err)
	}
}

func TestStartStudySession_NothingSelected(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	plan := learning.NewLearningPlan("plan-1", nil)
	if err := plans.Save(context.Background(), plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	uc := NewStartStudySession(plans, focus.Identity{}, newStubGenerator(), store.NewMemoryQuestionRepo())
	_, err := uc.Execute(context.Background(), "plan-1")
	var nothing *ErrNoKnowledgeUnitsSelected
	if !errors.As(err, &nothing) {
		t.Fatalf("err = %v, want ErrNoKnowledgeUnitsSelected", err)
	}
}

func TestStartStudySession_CompletedPlan(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	plan := planWithUnits(t, plans, 2)
	plan.Complete()
	if err := plans.Save(context.Background(), plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	uc := NewStartStudySession(plans, focus.Identity{}, newStubGenerator(), store.NewMemoryQuestionRepo())
	_, err := uc.Execute(context.Background(), "plan-1")
	var completed *learning.ErrPlanCompleted
	if !errors.As(err, &completed) {
		t.Fatalf("err = %v, want ErrPlanCompleted", err)
	}
}

func TestStartStudySession_GeneratorError(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	planWithUnits(t, plans, 2)
	gen := newStubGenerator()
	gen.err = errors.New("model offline")

	uc := NewStartStudySession(plans, focus.Identity{}, gen, store.NewMemoryQuestionRepo())
	if _, err := uc.Execute(context.Background(), "plan-1"); err == nil {
		t.Fatal("expected generator error to propagate")
	}

	// The failed session must not be persisted.
	reloaded, err := plans.GetByID(context.Background(), "plan-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(reloaded.Sessions) != 0 {
		t.Errorf("plan has %d sessions after failed start, want 0", len(reloaded.Sessions))
	}
}
