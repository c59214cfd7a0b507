package store

import (
	"context"
	"time"

	"github.com/abhisek/studiq/internal/learning"
)

// LearningPlanRepo persists the LearningPlan aggregate. Save and load
// always cover the whole tree: plan, sessions, session questions, attempts.
// No other repository touches sessions independently.
type LearningPlanRepo interface {
	// Save upserts the full aggregate.
	Save(ctx context.Context, plan *learning.LearningPlan) error

	// GetByID returns the aggregate, or nil if no plan has that id.
	GetByID(ctx context.Context, id learning.LearningPlanID) (*learning.LearningPlan, error)

	// ListActive returns all plans without a completion time.
	ListActive(ctx context.Context) ([]*learning.LearningPlan, error)

	// Delete removes a plan and all owned state. No-op for missing ids.
	Delete(ctx context.Context, id learning.LearningPlanID) error
}

// QuestionRepo persists canonical Question entities.
type QuestionRepo interface {
	Save(ctx context.Context, q *learning.Question) error

	// GetByID returns the question, or nil if not found.
	GetByID(ctx context.Context, id learning.QuestionID) (*learning.Question, error)

	ListAll(ctx context.Context) ([]*learning.Question, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is the read-side view of one recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// LLMUsage aggregates recorded usage per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates recorded usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recorded events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
