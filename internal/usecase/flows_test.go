package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/mastery"
	"github.com/abhisek/studiq/internal/store"
)

// stubEvaluator grades every answer with a fixed verdict.
type stubEvaluator struct {
	correct bool
	err     error
}

func (e *stubEvaluator) EvaluateAnswer(_ context.Context, q *learning.Question, _ learning.Answer) (learning.AnswerAssessment, error) {
	if e.err != nil {
		return learning.AnswerAssessment{}, e.err
	}
	return learning.AnswerAssessment{
		IsCorrect:     e.correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   "stub verdict",
		Confidence:    1.0,
		AssessedAt:    time.Now().UTC(),
	}, nil
}

// seedSession persists a plan with one session holding one registered
// question, plus the canonical question record.
func seedSession(t *testing.T, plans store.LearningPlanRepo, questions store.QuestionRepo) (*learning.LearningPlan, *learning.StudySession) {
	t.Helper()
	ctx := context.Background()

	ku := learning.NewFactKnowledge("ku-1", "Boiling point",
		learning.Claim{Text: "Water boils at 100C.", DocID: "doc-1"})
	plan := learning.NewLearningPlan("plan-1", []*learning.KnowledgeUnit{ku})

	session, err := plan.StartSession(3)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := session.RegisterQuestion("q-1", "ku-1"); err != nil {
		t.Fatalf("RegisterQuestion: %v", err)
	}

	q := &learning.Question{
		ID:              "q-1",
		Text:            "At what temperature does water boil?",
		CorrectAnswer:   "100C",
		Difficulty:      learning.Difficulty{Level: 1},
		KnowledgeUnitID: "ku-1",
	}
	if err := questions.Save(ctx, q); err != nil {
		t.Fatalf("save question: %v", err)
	}
	if err := plans.Save(ctx, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	return plan, session
}

func TestSubmitAnswer(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()

	uc := NewSubmitAnswer(plans)
	if err := uc.Execute(ctx, "plan-1", session.ID, "q-1", "90C"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	reloaded, _ := plans.GetByID(ctx, "plan-1")
	s, _ := reloaded.Session(session.ID)
	sq, _ := s.Question("q-1")
	if len(sq.Attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(sq.Attempts))
	}
	if sq.Attempts[0].UserAnswer != "90C" {
		t.Errorf("UserAnswer = %q, want 90C", sq.Attempts[0].UserAnswer)
	}
	if sq.Attempts[0].Assessment != nil {
		t.Error("submitting must not assess")
	}
	if sq.Status() != learning.StatusPending {
		t.Errorf("status = %s, want pending", sq.Status())
	}
}

func TestSubmitAnswer_NotFoundChain(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()
	uc := NewSubmitAnswer(plans)

	var planErr *ErrPlanNotFound
	if err := uc.Execute(ctx, "missing", session.ID, "q-1", "x"); !errors.As(err, &planErr) {
		t.Errorf("missing plan: err = %v, want ErrPlanNotFound", err)
	}

	var sessionErr *ErrSessionNotFound
	if err := uc.Execute(ctx, "plan-1", "missing", "q-1", "x"); !errors.As(err, &sessionErr) {
		t.Errorf("missing session: err = %v, want ErrSessionNotFound", err)
	}

	var questionErr *ErrQuestionNotInSession
	if err := uc.Execute(ctx, "plan-1", session.ID, "missing", "x"); !errors.As(err, &questionErr) {
		t.Errorf("missing question: err = %v, want ErrQuestionNotInSession", err)
	}
}

func TestAssessQuestionOutcome(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()

	if err := NewSubmitAnswer(plans).Execute(ctx, "plan-1", session.ID, "q-1", "100C"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	uc := NewAssessQuestionOutcome(plans, questions, &stubEvaluator{correct: true})
	assessment, err := uc.Execute(ctx, "plan-1", session.ID, "q-1")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !assessment.IsCorrect {
		t.Error("assessment.IsCorrect = false, want true")
	}
	if assessment.CorrectAnswer != "100C" {
		t.Errorf("CorrectAnswer = %q, want 100C", assessment.CorrectAnswer)
	}

	reloaded, _ := plans.GetByID(ctx, "plan-1")
	s, _ := reloaded.Session(session.ID)
	sq, _ := s.Question("q-1")
	if sq.Status() != learning.StatusCorrect {
		t.Errorf("status = %s, want correct", sq.Status())
	}
	if _, ok := sq.LatestUnassessedAttempt(); ok {
		t.Error("attempt still unassessed after assessment")
	}
}

func TestAssessQuestionOutcome_NoUnassessedAttempt(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()

	uc := NewAssessQuestionOutcome(plans, questions, &stubEvaluator{correct: true})
	_, err := uc.Execute(ctx, "plan-1", session.ID, "q-1")
	var noAttempt *learning.ErrNoUnassessedAttempt
	if !errors.As(err, &noAttempt) {
		t.Fatalf("err = %v, want ErrNoUnassessedAttempt", err)
	}
}

func TestAssessQuestionOutcome_CanonicalQuestionMissing(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	// Empty question store: the session references q-1 but the record is gone.
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, store.NewMemoryQuestionRepo())
	ctx := context.Background()

	if err := NewSubmitAnswer(plans).Execute(ctx, "plan-1", session.ID, "q-1", "100C"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	uc := NewAssessQuestionOutcome(plans, questions, &stubEvaluator{correct: true})
	_, err := uc.Execute(ctx, "plan-1", session.ID, "q-1")
	var notFound *ErrQuestionNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestAssessQuestionOutcome_EvaluatorError(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()

	if err := NewSubmitAnswer(plans).Execute(ctx, "plan-1", session.ID, "q-1", "100C"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	uc := NewAssessQuestionOutcome(plans, questions, &stubEvaluator{err: errors.New("judge offline")})
	if _, err := uc.Execute(ctx, "plan-1", session.ID, "q-1"); err == nil {
		t.Fatal("expected evaluator error to propagate")
	}

	// The attempt stays unassessed so it can be retried.
	reloaded, _ := plans.GetByID(ctx, "plan-1")
	s, _ := reloaded.Session(session.ID)
	sq, _ := s.Question("q-1")
	if _, ok := sq.LatestUnassessedAttempt(); !ok {
		t.Error("attempt should remain unassessed after a failed evaluation")
	}
}

func TestUpdateKnowledgeUnitMastery(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()

	// One correct first-try outcome: mastery should reach 1.0.
	if err := NewSubmitAnswer(plans).Execute(ctx, "plan-1", session.ID, "q-1", "100C"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := NewAssessQuestionOutcome(plans, questions, &stubEvaluator{correct: true}).
		Execute(ctx, "plan-1", session.ID, "q-1"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	uc := NewUpdateKnowledgeUnitMastery(plans, mastery.NewQuestionBased())
	ku, err := uc.Execute(ctx, "plan-1", "ku-1")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ku.MasteryLevel != 1.0 {
		t.Errorf("MasteryLevel = %f, want 1.0", ku.MasteryLevel)
	}

	// The new level is persisted on the aggregate.
	reloaded, _ := plans.GetByID(ctx, "plan-1")
	persisted, _ := reloaded.KnowledgeUnit("ku-1")
	if persisted.MasteryLevel != 1.0 {
		t.Errorf("persisted MasteryLevel = %f, want 1.0", persisted.MasteryLevel)
	}
}

func TestUpdateKnowledgeUnitMastery_UnknownUnit(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	seedSession(t, plans, store.NewMemoryQuestionRepo())

	uc := NewUpdateKnowledgeUnitMastery(plans, mastery.NewQuestionBased())
	_, err := uc.Execute(context.Background(), "plan-1", "ku-missing")
	var notInPlan *ErrKnowledgeUnitNotInPlan
	if !errors.As(err, &notInPlan) {
		t.Fatalf("err = %v, want ErrKnowledgeUnitNotInPlan", err)
	}
}

func TestUpdateKnowledgeUnitMastery_IgnoresPending(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	questions := store.NewMemoryQuestionRepo()
	_, session := seedSession(t, plans, questions)
	ctx := context.Background()

	// Answered but never assessed: still pending, so mastery stays 0.
	if err := NewSubmitAnswer(plans).Execute(ctx, "plan-1", session.ID, "q-1", "100C"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	uc := NewUpdateKnowledgeUnitMastery(plans, mastery.NewQuestionBased())
	ku, err := uc.Execute(ctx, "plan-1", "ku-1")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ku.MasteryLevel != 0 {
		t.Errorf("MasteryLevel = %f, want 0 with only pending questions", ku.MasteryLevel)
	}
}

func TestQueries(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	_, session := seedSession(t, plans, store.NewMemoryQuestionRepo())
	ctx := context.Background()
	q := NewQueries(plans)

	plan, err := q.GetLearningPlan(ctx, "plan-1")
	if err != nil {
		t.Fatalf("GetLearningPlan: %v", err)
	}
	if plan.ID != "plan-1" {
		t.Errorf("plan.ID = %s, want plan-1", plan.ID)
	}

	got, err := q.GetStudySession(ctx, "plan-1", session.ID)
	if err != nil {
		t.Fatalf("GetStudySession: %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("session.ID = %s, want %s", got.ID, session.ID)
	}

	active, err := q.ListLearningPlans(ctx)
	if err != nil {
		t.Fatalf("ListLearningPlans: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("active plans = %d, want 1", len(active))
	}

	var planErr *ErrPlanNotFound
	if _, err := q.GetLearningPlan(ctx, "missing"); !errors.As(err, &planErr) {
		t.Errorf("missing plan: err = %v, want ErrPlanNotFound", err)
	}
	var sessionErr *ErrSessionNotFound
	if _, err := q.GetStudySession(ctx, "plan-1", "missing"); !errors.As(err, &sessionErr) {
		t.Errorf("missing session: err = %v, want ErrSessionNotFound", err)
	}
}

func TestPlanLifecycle(t *testing.T) {
	plans := store.NewMemoryPlanRepo()
	seedSession(t, plans, store.NewMemoryQuestionRepo())
	ctx := context.Background()
	uc := NewPlanLifecycle(plans)

	plan, err := uc.Complete(ctx, "plan-1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !plan.IsCompleted() {
		t.Error("plan not completed")
	}
	first := *plan.CompletedAt

	// Idempotent: completing again keeps the original time.
	plan, err = uc.Complete(ctx, "plan-1")
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if !plan.CompletedAt.Equal(first) {
		t.Error("completion time changed on repeat completion")
	}

	// Completed plans drop out of the active list.
	active, err := NewQueries(plans).ListLearningPlans(ctx)
	if err != nil {
		t.Fatalf("ListLearningPlans: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active plans = %d, want 0", len(active))
	}

	if err := uc.Delete(ctx, "plan-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var notFound *ErrPlanNotFound
	if err := uc.Delete(ctx, "plan-1"); !errors.As(err, &notFound) {
		t.Errorf("deleting twice: err = %v, want ErrPlanNotFound", err)
	}
}
