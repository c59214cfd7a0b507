package mastery

import (
	"testing"
	"time"

	"github.com/abhisek/studiq/internal/learning"
)

// questionWithOutcomes builds a session question with one assessed attempt
// per outcome, in order.
func questionWithOutcomes(id learning.QuestionID, outcomes ...bool) *learning.SessionQuestion {
	sq := learning.NewSessionQuestion(id, "ku-1")
	for _, correct := range outcomes {
		sq.SubmitAnswer("answer")
		attempt, ok := sq.LatestUnassessedAttempt()
		if !ok {
			panic("no unassessed attempt")
		}
		err := sq.AttachAssessment(attempt, learning.AnswerAssessment{
			IsCorrect:  correct,
			AssessedAt: time.Now().UTC(),
		})
		if err != nil {
			panic(err)
		}
	}
	return sq
}

func unansweredQuestion(id learning.QuestionID) *learning.SessionQuestion {
	sq := learning.NewSessionQuestion(id, "ku-1")
	sq.SubmitAnswer("ungraded")
	return sq
}

func TestComputeMastery_Empty(t *testing.T) {
	if got := ComputeMastery(nil); got != 0.0 {
		t.Errorf("ComputeMastery(nil) = %v, want 0.0", got)
	}
}

func TestComputeMastery_FirstTryCorrect(t *testing.T) {
	qs := []*learning.SessionQuestion{questionWithOutcomes("q1", true)}
	if got := ComputeMastery(qs); got != 1.0 {
		t.Errorf("ComputeMastery = %v, want 1.0 for first-try correct", got)
	}
}

func TestComputeMastery_RetryPenalty(t *testing.T) {
	// Three assessed attempts, latest correct: 1.0 - 0.2*2 = 0.6.
	qs := []*learning.SessionQuestion{questionWithOutcomes("q1", false, false, true)}
	got := ComputeMastery(qs)
	if got < 0.599 || got > 0.601 {
		t.Errorf("ComputeMastery = %v, want 0.6", got)
	}
}

func TestComputeMastery_PenaltyFloorsAtZero(t *testing.T) {
	// Seven assessed attempts, latest correct: 1.0 - 0.2*6 < 0, floored.
	qs := []*learning.SessionQuestion{
		questionWithOutcomes("q1", false, false, false, false, false, false, true),
	}
	if got := ComputeMastery(qs); got != 0.0 {
		t.Errorf("ComputeMastery = %v, want 0.0 (penalty floor)", got)
	}
}

func TestComputeMastery_IncorrectScoresZero(t *testing.T) {
	qs := []*learning.SessionQuestion{
		questionWithOutcomes("q1", true),
		questionWithOutcomes("q2", false),
	}
	if got := ComputeMastery(qs); got != 0.5 {
		t.Errorf("ComputeMastery = %v, want 0.5", got)
	}
}

func TestComputeMastery_LatestAssessedDecides(t *testing.T) {
	// Correct then re-graded incorrect: the final graded attempt governs.
	qs := []*learning.SessionQuestion{questionWithOutcomes("q1", true, false)}
	if got := ComputeMastery(qs); got != 0.0 {
		t.Errorf("ComputeMastery = %v, want 0.0 when latest assessment is incorrect", got)
	}
}

func TestComputeMastery_IgnoresUnanswered(t *testing.T) {
	// A question with no assessed attempts must not dilute the score.
	qs := []*learning.SessionQuestion{
		questionWithOutcomes("q1", true),
		unansweredQuestion("q2"),
	}
	if got := ComputeMastery(qs); got != 1.0 {
		t.Errorf("ComputeMastery = %v, want 1.0 (unanswered ignored)", got)
	}
}

func TestComputeMastery_AllUnanswered(t *testing.T) {
	qs := []*learning.SessionQuestion{
		unansweredQuestion("q1"),
		unansweredQuestion("q2"),
	}
	if got := ComputeMastery(qs); got != 0.0 {
		t.Errorf("ComputeMastery = %v, want 0.0 when nothing is assessed", got)
	}
}

func TestComputeMastery_Bounds(t *testing.T) {
	cases := [][]*learning.SessionQuestion{
		{questionWithOutcomes("q1", true), questionWithOutcomes("q2", true)},
		{questionWithOutcomes("q1", false, true), questionWithOutcomes("q2", false)},
		{questionWithOutcomes("q1", false, false, false)},
	}
	for i, qs := range cases {
		got := ComputeMastery(qs)
		if got < 0.0 || got > 1.0 {
			t.Errorf("case %d: ComputeMastery = %v, out of [0,1]", i, got)
		}
	}
}

func TestQuestionBased_UpdateMastery(t *testing.T) {
	svc := NewQuestionBased()
	ku := learning.NewFactKnowledge("ku-1", "fact", learning.Claim{Text: "c", DocID: "d"})

	updated := svc.UpdateMastery(ku, []*learning.SessionQuestion{
		questionWithOutcomes("q1", true),
		questionWithOutcomes("q2", false, true),
	})

	if updated != ku {
		t.Error("UpdateMastery must return the same unit")
	}
	// (1.0 + 0.8) / 2 = 0.9
	if ku.MasteryLevel < 0.899 || ku.MasteryLevel > 0.901 {
		t.Errorf("MasteryLevel = %v, want 0.9", ku.MasteryLevel)
	}
}
