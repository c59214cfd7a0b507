package store

import (
	"context"
	"sync"

	"github.com/abhisek/studiq/internal/learning"
)

// MemoryPlanRepo is an in-memory LearningPlanRepo for tests and local
// development. Aggregates are stored as deep copies so a loaded plan only
// becomes visible to other readers once it is saved back, matching the
// load-mutate-save contract of the SQLite-backed repo.
type MemoryPlanRepo struct {
	mu    sync.Mutex
	plans map[learning.LearningPlanID]*planDoc
}

// NewMemoryPlanRepo creates an empty in-memory plan repository.
func NewMemoryPlanRepo() *MemoryPlanRepo {
	return &MemoryPlanRepo{plans: make(map[learning.LearningPlanID]*planDoc)}
}

func (r *MemoryPlanRepo) Save(_ context.Context, plan *learning.LearningPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.ID] = planToDoc(plan)
	return nil
}

func (r *MemoryPlanRepo) GetByID(_ context.Context, id learning.LearningPlanID) (*learning.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return docToPlan(doc), nil
}

func (r *MemoryPlanRepo) ListActive(_ context.Context) ([]*learning.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*learning.LearningPlan
	for _, doc := range r.plans {
		if doc.CompletedAt == nil {
			out = append(out, docToPlan(doc))
		}
	}
	return out, nil
}

func (r *MemoryPlanRepo) Delete(_ context.Context, id learning.LearningPlanID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, id)
	return nil
}

// MemoryQuestionRepo is an in-memory QuestionRepo.
type MemoryQuestionRepo struct {
	mu        sync.Mutex
	questions map[learning.QuestionID]learning.Question
	order     []learning.QuestionID
}

// NewMemoryQuestionRepo creates an empty in-memory question repository.
func NewMemoryQuestionRepo() *MemoryQuestionRepo {
	return &MemoryQuestionRepo{questions: make(map[learning.QuestionID]learning.Question)}
}

func (r *MemoryQuestionRepo) Save(_ context.Context, q *learning.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[q.ID]; !ok {
		r.order = append(r.order, q.ID)
	}
	r.questions[q.ID] = *q
	return nil
}

func (r *MemoryQuestionRepo) GetByID(_ context.Context, id learning.QuestionID) (*learning.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (r *MemoryQuestionRepo) ListAll(_ context.Context) ([]*learning.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*learning.Question, 0, len(r.order))
	for _, id := range r.order {
		q := r.questions[id]
		out = append(out, &q)
	}
	return out, nil
}

// NopEventRepo discards events and reports no history. Used where event
// persistence is not wired, e.g. unit tests.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }

func (NopEventRepo) QueryLLMEvents(context.Context, QueryOpts) ([]LLMEvent, error) { return nil, nil }

func (NopEventRepo) GetLLMEvent(context.Context, int) (*LLMEvent, error) { return nil, nil }

func (NopEventRepo) LLMUsageByPurpose(context.Context) ([]LLMUsage, error) { return nil, nil }

func (NopEventRepo) LLMUsageByModel(context.Context) ([]LLMModelUsage, error) { return nil, nil }
