package learning

import "time"

// QuestionID uniquely identifies a question.
type QuestionID string

// Answer is a learner-facing answer string.
type Answer string

// Difficulty is the generator's self-assessed difficulty of a question.
type Difficulty struct {
	Level       int // 1 to 5
	Description string
}

// Question is the canonical question entity, generated once per knowledge
// unit and persisted in its own repository. Sessions reference it by ID only.
type Question struct {
	ID              QuestionID
	Text            string
	Difficulty      Difficulty
	CorrectAnswer   Answer
	KnowledgeUnitID KnowledgeUnitID
}

// QuestionStatus is the derived outcome of a session question.
type QuestionStatus string

const (
	StatusPending   QuestionStatus = "pending"
	StatusCorrect   QuestionStatus = "correct"
	StatusIncorrect QuestionStatus = "incorrect"
)

// AnswerAssessment is the graded outcome of one answer attempt. Produced
// exactly once per attempt by the evaluation service and attached permanently.
type AnswerAssessment struct {
	IsCorrect     bool
	CorrectAnswer Answer
	Explanation   string
	Confidence    float64
	AssessedAt    time.Time
}

// AnswerAttempt records one answer a learner gave, with its assessment
// once graded. Attempts are immutable values; attaching an assessment
// replaces the stored attempt with an equivalent one carrying the result.
type AnswerAttempt struct {
	UserAnswer Answer
	AnsweredAt time.Time
	Assessment *AnswerAssessment
}

// equal reports whether two attempts are the same attempt by value.
// Assessments are compared by presence only: an attempt is located for
// assessment attachment before it carries one.
func (a AnswerAttempt) equal(b AnswerAttempt) bool {
	return a.UserAnswer == b.UserAnswer &&
		a.AnsweredAt.Equal(b.AnsweredAt) &&
		(a.Assessment == nil) == (b.Assessment == nil)
}

// SessionQuestion is the session-scoped mutable record of one question's
// attempt history. Attempts are append-only; insertion order is
// chronological order.
type SessionQuestion struct {
	QuestionID      QuestionID
	KnowledgeUnitID KnowledgeUnitID
	Attempts        []AnswerAttempt
	LastAnsweredAt  *time.Time
}

// NewSessionQuestion creates an empty session question record.
func NewSessionQuestion(questionID QuestionID, kuID KnowledgeUnitID) *SessionQuestion {
	return &SessionQuestion{
		QuestionID:      questionID,
		KnowledgeUnitID: kuID,
	}
}

// SubmitAnswer appends a new unassessed attempt with the current timestamp.
// Always succeeds; the session-level capacity bounds questions, not attempts.
func (sq *SessionQuestion) SubmitAnswer(userAnswer Answer) {
	now := time.Now().UTC()
	sq.Attempts = append(sq.Attempts, AnswerAttempt{
		UserAnswer: userAnswer,
		AnsweredAt: now,
	})
	sq.LastAnsweredAt = &now
}

// LatestUnassessedAttempt returns the most recent attempt awaiting grading,
// or false if every attempt is assessed or none exist.
func (sq *SessionQuestion) LatestUnassessedAttempt() (AnswerAttempt, bool) {
	for i := len(sq.Attempts) - 1; i >= 0; i-- {
		if sq.Attempts[i].Assessment == nil {
			return sq.Attempts[i], true
		}
	}
	return AnswerAttempt{}, false
}

// AttachAssessment locates attempt by value within the stored sequence and
// replaces it with an equivalent attempt carrying the assessment. Returns
// ErrAttemptMismatch if the attempt is not a member.
func (sq *SessionQuestion) AttachAssessment(attempt AnswerAttempt, assessment AnswerAssessment) error {
	for i := len(sq.Attempts) - 1; i >= 0; i-- {
		if sq.Attempts[i].equal(attempt) {
			sq.Attempts[i] = AnswerAttempt{
				UserAnswer: attempt.UserAnswer,
				AnsweredAt: attempt.AnsweredAt,
				Assessment: &assessment,
			}
			return nil
		}
	}
	return &ErrAttemptMismatch{QuestionID: sq.QuestionID}
}

// AssessedAttempts returns the attempts that carry an assessment,
// in chronological order.
func (sq *SessionQuestion) AssessedAttempts() []AnswerAttempt {
	var out []AnswerAttempt
	for _, a := range sq.Attempts {
		if a.Assessment != nil {
			out = append(out, a)
		}
	}
	return out
}

// Status derives the question outcome: Pending if there are no attempts or
// none is assessed; otherwise the correctness of the latest assessed attempt.
// A newer, still-unassessed attempt does not change the status.
func (sq *SessionQuestion) Status() QuestionStatus {
	for i := len(sq.Attempts) - 1; i >= 0; i-- {
		if a := sq.Attempts[i].Assessment; a != nil {
			if a.IsCorrect {
				return StatusCorrect
			}
			return StatusIncorrect
		}
	}
	return StatusPending
}
