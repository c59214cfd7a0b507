package learning

import (
	"errors"
	"testing"
	"time"
)

func assessed(correct bool) AnswerAssessment {
	return AnswerAssessment{
		IsCorrect:     correct,
		CorrectAnswer: "42",
		AssessedAt:    time.Now().UTC(),
	}
}

func TestSessionQuestion_Status_NoAttempts(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")
	if got := sq.Status(); got != StatusPending {
		t.Errorf("Status() = %s, want pending", got)
	}
}

func TestSessionQuestion_Status_UnassessedAttempt(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")
	sq.SubmitAnswer("41")
	if got := sq.Status(); got != StatusPending {
		t.Errorf("Status() = %s, want pending before assessment", got)
	}
}

func TestSessionQuestion_Status_LatestAssessedWins(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")

	sq.SubmitAnswer("42")
	attempt, ok := sq.LatestUnassessedAttempt()
	if !ok {
		t.Fatal("expected an unassessed attempt")
	}
	if err := sq.AttachAssessment(attempt, assessed(true)); err != nil {
		t.Fatalf("AttachAssessment: %v", err)
	}
	if got := sq.Status(); got != StatusCorrect {
		t.Errorf("Status() = %s, want correct", got)
	}

	// A later incorrect assessment (re-grade) flips the status.
	sq.SubmitAnswer("41")
	attempt, ok = sq.LatestUnassessedAttempt()
	if !ok {
		t.Fatal("expected a second unassessed attempt")
	}
	if err := sq.AttachAssessment(attempt, assessed(false)); err != nil {
		t.Fatalf("AttachAssessment: %v", err)
	}
	if got := sq.Status(); got != StatusIncorrect {
		t.Errorf("Status() = %s, want incorrect after re-grade", got)
	}
}

func TestSessionQuestion_Status_NewerUnassessedDoesNotMask(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")

	sq.SubmitAnswer("42")
	attempt, _ := sq.LatestUnassessedAttempt()
	if err := sq.AttachAssessment(attempt, assessed(true)); err != nil {
		t.Fatalf("AttachAssessment: %v", err)
	}

	// A newer unassessed attempt leaves the status at the latest
	// assessed outcome.
	sq.SubmitAnswer("guess")
	if got := sq.Status(); got != StatusCorrect {
		t.Errorf("Status() = %s, want correct while newest attempt is ungraded", got)
	}
}

func TestSessionQuestion_LatestUnassessedAttempt_AllAssessed(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")
	sq.SubmitAnswer("42")
	attempt, _ := sq.LatestUnassessedAttempt()
	if err := sq.AttachAssessment(attempt, assessed(true)); err != nil {
		t.Fatalf("AttachAssessment: %v", err)
	}

	if _, ok := sq.LatestUnassessedAttempt(); ok {
		t.Error("expected no unassessed attempt after grading")
	}
}

func TestSessionQuestion_AttachAssessment_NotAMember(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")
	sq.SubmitAnswer("42")

	foreign := AnswerAttempt{
		UserAnswer: "other",
		AnsweredAt: time.Now().UTC(),
	}
	err := sq.AttachAssessment(foreign, assessed(true))

	var mismatch *ErrAttemptMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want ErrAttemptMismatch", err)
	}
	if mismatch.QuestionID != "q1" {
		t.Errorf("QuestionID = %s, want q1", mismatch.QuestionID)
	}
}

func TestSessionQuestion_SubmitAnswer_UpdatesLastAnsweredAt(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")
	if sq.LastAnsweredAt != nil {
		t.Fatal("LastAnsweredAt should start nil")
	}

	sq.SubmitAnswer("42")
	if sq.LastAnsweredAt == nil {
		t.Fatal("LastAnsweredAt not set after SubmitAnswer")
	}
	if len(sq.Attempts) != 1 {
		t.Errorf("len(Attempts) = %d, want 1", len(sq.Attempts))
	}
	if sq.Attempts[0].Assessment != nil {
		t.Error("new attempt must be unassessed")
	}
}

func TestSessionQuestion_AssessedAttempts_Order(t *testing.T) {
	sq := NewSessionQuestion("q1", "ku1")

	for i, ans := range []Answer{"a", "b", "c"} {
		sq.SubmitAnswer(ans)
		attempt, _ := sq.LatestUnassessedAttempt()
		if err := sq.AttachAssessment(attempt, assessed(i == 2)); err != nil {
			t.Fatalf("AttachAssessment: %v", err)
		}
	}

	got := sq.AssessedAttempts()
	if len(got) != 3 {
		t.Fatalf("len(AssessedAttempts()) = %d, want 3", len(got))
	}
	if got[0].UserAnswer != "a" || got[2].UserAnswer != "c" {
		t.Error("assessed attempts not in chronological order")
	}
}
