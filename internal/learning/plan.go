package learning

import (
	"time"

	"github.com/google/uuid"
)

// StudySessionID uniquely identifies a study session within a plan.
type StudySessionID string

// LearningPlanID uniquely identifies a learning plan aggregate.
type LearningPlanID string

// StudySession is a bounded learning interaction consisting of a finite
// number of questions. Owned exclusively by one LearningPlan.
//
// KnowledgeUnitIDs is a snapshot of the plan's scope at session start;
// later changes to the plan do not retroactively alter a session.
type StudySession struct {
	ID               StudySessionID
	KnowledgeUnitIDs []KnowledgeUnitID
	MaxQuestions     int
	Questions        map[QuestionID]*SessionQuestion

	// QuestionOrder preserves registration order; Questions keys alone
	// would lose it.
	QuestionOrder []QuestionID

	StartedAt time.Time
	EndedAt   *time.Time
}

// NewStudySession creates a session scoped to the given knowledge units.
func NewStudySession(id StudySessionID, kuIDs []KnowledgeUnitID, maxQuestions int) *StudySession {
	return &StudySession{
		ID:               id,
		KnowledgeUnitIDs: kuIDs,
		MaxQuestions:     maxQuestions,
		Questions:        make(map[QuestionID]*SessionQuestion),
		StartedAt:        time.Now().UTC(),
	}
}

// CanAskMoreQuestions reports whether the session has remaining capacity
// and has not been ended.
func (s *StudySession) CanAskMoreQuestions() bool {
	return len(s.Questions) < s.MaxQuestions && s.EndedAt == nil
}

// RegisterQuestion ensures a SessionQuestion exists for the given question.
// Registering an already-present question is a no-op. Returns ErrSessionFull
// when the session is at capacity or ended.
func (s *StudySession) RegisterQuestion(questionID QuestionID, kuID KnowledgeUnitID) error {
	if _, ok := s.Questions[questionID]; ok {
		return nil
	}
	if !s.CanAskMoreQuestions() {
		return &ErrSessionFull{SessionID: s.ID}
	}
	s.Questions[questionID] = NewSessionQuestion(questionID, kuID)
	s.QuestionOrder = append(s.QuestionOrder, questionID)
	return nil
}

// Question returns the session question for the given id, or false if the
// question is not part of this session.
func (s *StudySession) Question(questionID QuestionID) (*SessionQuestion, bool) {
	sq, ok := s.Questions[questionID]
	return sq, ok
}

// OrderedQuestions returns the session questions in registration order.
func (s *StudySession) OrderedQuestions() []*SessionQuestion {
	out := make([]*SessionQuestion, 0, len(s.QuestionOrder))
	for _, id := range s.QuestionOrder {
		if sq, ok := s.Questions[id]; ok {
			out = append(out, sq)
		}
	}
	return out
}

// IsCompleted reports whether the session is over: explicitly ended, or at
// least one question is registered and every registered question has left
// pending status. A session with zero questions is never implicitly complete.
func (s *StudySession) IsCompleted() bool {
	if s.EndedAt != nil {
		return true
	}
	if len(s.Questions) == 0 {
		return false
	}
	for _, sq := range s.Questions {
		if sq.Status() == StatusPending {
			return false
		}
	}
	return true
}

// EndEarly marks the session as ended now. No-op if already ended.
func (s *StudySession) EndEarly() {
	if s.EndedAt == nil {
		now := time.Now().UTC()
		s.EndedAt = &now
	}
}

// LearningPlan is the aggregate root: a learner's intent to master a set of
// knowledge units over time. It exclusively owns its study sessions and
// knowledge units; every mutation loads the full aggregate and saves it back.
type LearningPlan struct {
	ID             LearningPlanID
	KnowledgeUnits []*KnowledgeUnit
	Sessions       []*StudySession
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// NewLearningPlan creates a plan owning the given knowledge units.
func NewLearningPlan(id LearningPlanID, units []*KnowledgeUnit) *LearningPlan {
	return &LearningPlan{
		ID:             id,
		KnowledgeUnits: units,
		CreatedAt:      time.Now().UTC(),
	}
}

// StartSession appends a new session scoped to the plan's current knowledge
// units. Returns ErrPlanCompleted if the plan has been completed.
func (p *LearningPlan) StartSession(maxQuestions int) (*StudySession, error) {
	kuIDs := make([]KnowledgeUnitID, len(p.KnowledgeUnits))
	for i, ku := range p.KnowledgeUnits {
		kuIDs[i] = ku.ID
	}
	return p.StartFocusedSession(kuIDs, maxQuestions)
}

// StartFocusedSession appends a new session scoped to the given subset of
// the plan's knowledge units. Returns ErrPlanCompleted if the plan has been
// completed.
func (p *LearningPlan) StartFocusedSession(kuIDs []KnowledgeUnitID, maxQuestions int) (*StudySession, error) {
	if p.IsCompleted() {
		return nil, &ErrPlanCompleted{PlanID: p.ID}
	}

	session := NewStudySession(
		StudySessionID(uuid.NewString()),
		kuIDs,
		maxQuestions,
	)
	p.Sessions = append(p.Sessions, session)
	return session, nil
}

// Session returns the session with the given id, or false if absent.
func (p *LearningPlan) Session(id StudySessionID) (*StudySession, bool) {
	for _, s := range p.Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// KnowledgeUnit returns the knowledge unit with the given id, or false
// if the plan does not own it.
func (p *LearningPlan) KnowledgeUnit(id KnowledgeUnitID) (*KnowledgeUnit, bool) {
	for _, ku := range p.KnowledgeUnits {
		if ku.ID == id {
			return ku, true
		}
	}
	return nil, false
}

// AllQuestions flattens every session's questions into one sequence:
// session order, then per-session registration order.
func (p *LearningPlan) AllQuestions() []*SessionQuestion {
	var out []*SessionQuestion
	for _, s := range p.Sessions {
		out = append(out, s.OrderedQuestions()...)
	}
	return out
}

// IsCompleted reports whether the plan has been completed.
func (p *LearningPlan) IsCompleted() bool {
	return p.CompletedAt != nil
}

// Complete marks the plan as completed now. Idempotent: the first
// completion time is preserved.
func (p *LearningPlan) Complete() {
	if p.CompletedAt == nil {
		now := time.Now().UTC()
		p.CompletedAt = &now
	}
}
