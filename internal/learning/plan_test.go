package learning

import (
	"errors"
	"testing"
	"time"
)

func testUnits() []*KnowledgeUnit {
	claim := Claim{Text: "The sky is blue.", DocID: "doc-1"}
	return []*KnowledgeUnit{
		NewFactKnowledge("ku-1", "Sky color", claim),
		NewSkillKnowledge("ku-2", "Explain light scattering", []Claim{claim}),
	}
}

func gradeLatest(t *testing.T, sq *SessionQuestion, correct bool) {
	t.Helper()
	attempt, ok := sq.LatestUnassessedAttempt()
	if !ok {
		t.Fatal("no unassessed attempt to grade")
	}
	if err := sq.AttachAssessment(attempt, assessed(correct)); err != nil {
		t.Fatalf("AttachAssessment: %v", err)
	}
}

func TestStudySession_CapacityInvariant(t *testing.T) {
	s := NewStudySession("s1", []KnowledgeUnitID{"ku-1"}, 2)

	if err := s.RegisterQuestion("q1", "ku-1"); err != nil {
		t.Fatalf("RegisterQuestion q1: %v", err)
	}
	if err := s.RegisterQuestion("q2", "ku-1"); err != nil {
		t.Fatalf("RegisterQuestion q2: %v", err)
	}

	err := s.RegisterQuestion("q3", "ku-1")
	var full *ErrSessionFull
	if !errors.As(err, &full) {
		t.Fatalf("err = %v, want ErrSessionFull", err)
	}
	if len(s.Questions) != 2 {
		t.Errorf("len(Questions) = %d, want 2", len(s.Questions))
	}
}

func TestStudySession_RegisterQuestion_Idempotent(t *testing.T) {
	s := NewStudySession("s1", []KnowledgeUnitID{"ku-1"}, 1)

	if err := s.RegisterQuestion("q1", "ku-1"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	// Re-registering at capacity is still a no-op, not a capacity error.
	if err := s.RegisterQuestion("q1", "ku-1"); err != nil {
		t.Fatalf("second registration: %v", err)
	}
	if len(s.Questions) != 1 {
		t.Errorf("len(Questions) = %d, want 1", len(s.Questions))
	}
	if len(s.QuestionOrder) != 1 {
		t.Errorf("len(QuestionOrder) = %d, want 1", len(s.QuestionOrder))
	}
}

func TestStudySession_CanAskMoreQuestions_AfterEnd(t *testing.T) {
	s := NewStudySession("s1", nil, 5)
	if !s.CanAskMoreQuestions() {
		t.Fatal("fresh session should accept questions")
	}
	s.EndEarly()
	if s.CanAskMoreQuestions() {
		t.Error("ended session should not accept questions")
	}
}

func TestStudySession_ImplicitCompletion(t *testing.T) {
	s := NewStudySession("s1", []KnowledgeUnitID{"ku-1"}, 2)
	s.RegisterQuestion("q1", "ku-1")
	s.RegisterQuestion("q2", "ku-1")

	if s.IsCompleted() {
		t.Fatal("session with pending questions should not be complete")
	}

	qa, _ := s.Question("q1")
	qa.SubmitAnswer("x")
	gradeLatest(t, qa, true)

	if s.IsCompleted() {
		t.Fatal("one question still pending, session should not be complete")
	}

	qb, _ := s.Question("q2")
	qb.SubmitAnswer("y")
	gradeLatest(t, qb, false)

	if !s.IsCompleted() {
		t.Error("all questions assessed, session should be implicitly complete")
	}
}

func TestStudySession_ZeroQuestions_NeverImplicitlyComplete(t *testing.T) {
	s := NewStudySession("s1", nil, 3)
	if s.IsCompleted() {
		t.Error("empty session must not be implicitly complete")
	}
	s.EndEarly()
	if !s.IsCompleted() {
		t.Error("explicitly ended session must be complete")
	}
}

func TestStudySession_EndEarly_Idempotent(t *testing.T) {
	s := NewStudySession("s1", nil, 3)
	s.EndEarly()
	first := *s.EndedAt
	time.Sleep(time.Millisecond)
	s.EndEarly()
	if !s.EndedAt.Equal(first) {
		t.Error("EndEarly must preserve the first end time")
	}
}

func TestLearningPlan_StartSession_SnapshotsUnits(t *testing.T) {
	plan := NewLearningPlan("plan-1", testUnits())

	session, err := plan.StartSession(6)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if len(session.KnowledgeUnitIDs) != 2 {
		t.Fatalf("len(KnowledgeUnitIDs) = %d, want 2", len(session.KnowledgeUnitIDs))
	}

	// Growing the plan afterwards must not alter the session's scope.
	plan.KnowledgeUnits = append(plan.KnowledgeUnits,
		NewFactKnowledge("ku-3", "Later unit", Claim{Text: "c", DocID: "doc-2"}))
	if len(session.KnowledgeUnitIDs) != 2 {
		t.Error("session scope must be a snapshot, not live plan membership")
	}
}

func TestLearningPlan_StartFocusedSession_SubsetScope(t *testing.T) {
	plan := NewLearningPlan("plan-1", testUnits())

	session, err := plan.StartFocusedSession([]KnowledgeUnitID{"ku-2"}, 4)
	if err != nil {
		t.Fatalf("StartFocusedSession: %v", err)
	}
	if len(session.KnowledgeUnitIDs) != 1 || session.KnowledgeUnitIDs[0] != "ku-2" {
		t.Errorf("KnowledgeUnitIDs = %v, want [ku-2]", session.KnowledgeUnitIDs)
	}
	if len(plan.Sessions) != 1 {
		t.Errorf("len(Sessions) = %d, want 1", len(plan.Sessions))
	}
}

func TestLearningPlan_CompletionGate(t *testing.T) {
	plan := NewLearningPlan("plan-1", testUnits())
	plan.Complete()

	_, err := plan.StartSession(6)
	var completed *ErrPlanCompleted
	if !errors.As(err, &completed) {
		t.Fatalf("err = %v, want ErrPlanCompleted", err)
	}
	if completed.PlanID != "plan-1" {
		t.Errorf("PlanID = %s, want plan-1", completed.PlanID)
	}
}

func TestLearningPlan_Complete_Idempotent(t *testing.T) {
	plan := NewLearningPlan("plan-1", nil)
	plan.Complete()
	first := *plan.CompletedAt
	time.Sleep(time.Millisecond)
	plan.Complete()
	if !plan.CompletedAt.Equal(first) {
		t.Error("Complete must preserve the first completion time")
	}
}

func TestLearningPlan_AllQuestions_Order(t *testing.T) {
	plan := NewLearningPlan("plan-1", testUnits())

	s1, _ := plan.StartSession(2)
	s1.RegisterQuestion("q1", "ku-1")
	s1.RegisterQuestion("q2", "ku-1")

	s2, _ := plan.StartSession(2)
	s2.RegisterQuestion("q3", "ku-2")

	all := plan.AllQuestions()
	if len(all) != 3 {
		t.Fatalf("len(AllQuestions()) = %d, want 3", len(all))
	}
	want := []QuestionID{"q1", "q2", "q3"}
	for i, sq := range all {
		if sq.QuestionID != want[i] {
			t.Errorf("AllQuestions()[%d] = %s, want %s", i, sq.QuestionID, want[i])
		}
	}
}

func TestLearningPlan_Lookups(t *testing.T) {
	plan := NewLearningPlan("plan-1", testUnits())
	session, _ := plan.StartSession(3)

	if _, ok := plan.Session(session.ID); !ok {
		t.Error("Session lookup failed for existing session")
	}
	if _, ok := plan.Session("missing"); ok {
		t.Error("Session lookup succeeded for missing session")
	}
	if _, ok := plan.KnowledgeUnit("ku-2"); !ok {
		t.Error("KnowledgeUnit lookup failed for existing unit")
	}
	if _, ok := plan.KnowledgeUnit("missing"); ok {
		t.Error("KnowledgeUnit lookup succeeded for missing unit")
	}
}
