package store

import (
	"encoding/json"
	"time"

	"github.com/abhisek/studiq/internal/learning"
)

// Serialization types for the LearningPlan aggregate. The whole tree is
// stored as one JSON document; the domain types themselves carry no JSON
// tags so the wire shape can evolve independently.

type planDoc struct {
	ID             string       `json:"id"`
	KnowledgeUnits []kuDoc      `json:"knowledge_units"`
	Sessions       []sessionDoc `json:"sessions"`
	CreatedAt      time.Time    `json:"created_at"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
}

type kuDoc struct {
	ID                 string     `json:"id"`
	Kind               string     `json:"kind"`
	Description        string     `json:"description"`
	Importance         float64    `json:"importance"`
	MasteryLevel       float64    `json:"mastery_level"`
	DocumentReferences []string   `json:"document_references,omitempty"`
	TargetClaim        *claimDoc  `json:"target_claim,omitempty"`
	SourceClaims       []claimDoc `json:"source_claims,omitempty"`
}

type claimDoc struct {
	Text        string `json:"text"`
	DocID       string `json:"doc_id"`
	DocLocation string `json:"doc_location,omitempty"`
}

type sessionDoc struct {
	ID               string               `json:"id"`
	KnowledgeUnitIDs []string             `json:"knowledge_unit_ids"`
	MaxQuestions     int                  `json:"max_questions"`
	Questions        []sessionQuestionDoc `json:"questions"`
	StartedAt        time.Time            `json:"started_at"`
	EndedAt          *time.Time           `json:"ended_at,omitempty"`
}

type sessionQuestionDoc struct {
	QuestionID      string       `json:"question_id"`
	KnowledgeUnitID string       `json:"knowledge_unit_id,omitempty"`
	Attempts        []attemptDoc `json:"attempts"`
	LastAnsweredAt  *time.Time   `json:"last_answered_at,omitempty"`
}

type attemptDoc struct {
	UserAnswer Answer         `json:"user_answer"`
	AnsweredAt time.Time      `json:"answered_at"`
	Assessment *assessmentDoc `json:"assessment,omitempty"`
}

// Answer aliases the domain answer type for JSON encoding.
type Answer = learning.Answer

type assessmentDoc struct {
	IsCorrect     bool      `json:"is_correct"`
	CorrectAnswer Answer    `json:"correct_answer,omitempty"`
	Explanation   string    `json:"explanation,omitempty"`
	Confidence    float64   `json:"confidence,omitempty"`
	AssessedAt    time.Time `json:"assessed_at"`
}

// encodePlan converts the aggregate to the map form ent JSON fields expect.
func encodePlan(plan *learning.LearningPlan) (map[string]any, error) {
	doc := planToDoc(plan)
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// decodePlan reconstructs the aggregate from its stored map form.
func decodePlan(m map[string]any) (*learning.LearningPlan, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc planDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return docToPlan(&doc), nil
}

func planToDoc(plan *learning.LearningPlan) *planDoc {
	doc := &planDoc{
		ID:          string(plan.ID),
		CreatedAt:   plan.CreatedAt,
		CompletedAt: plan.CompletedAt,
	}
	for _, ku := range plan.KnowledgeUnits {
		doc.KnowledgeUnits = append(doc.KnowledgeUnits, kuToDoc(ku))
	}
	for _, s := range plan.Sessions {
		doc.Sessions = append(doc.Sessions, sessionToDoc(s))
	}
	return doc
}

func docToPlan(doc *planDoc) *learning.LearningPlan {
	plan := &learning.LearningPlan{
		ID:          learning.LearningPlanID(doc.ID),
		CreatedAt:   doc.CreatedAt,
		CompletedAt: doc.CompletedAt,
	}
	for i := range doc.KnowledgeUnits {
		plan.KnowledgeUnits = append(plan.KnowledgeUnits, docToKU(&doc.KnowledgeUnits[i]))
	}
	for i := range doc.Sessions {
		plan.Sessions = append(plan.Sessions, docToSession(&doc.Sessions[i]))
	}
	return plan
}

func kuToDoc(ku *learning.KnowledgeUnit) kuDoc {
	doc := kuDoc{
		ID:           string(ku.ID),
		Kind:         string(ku.Kind),
		Description:  ku.Description,
		Importance:   ku.Importance,
		MasteryLevel: ku.MasteryLevel,
	}
	for _, ref := range ku.DocumentReferences {
		doc.DocumentReferences = append(doc.DocumentReferences, string(ref))
	}
	if ku.TargetClaim != nil {
		c := claimToDoc(*ku.TargetClaim)
		doc.TargetClaim = &c
	}
	for _, c := range ku.SourceClaims {
		doc.SourceClaims = append(doc.SourceClaims, claimToDoc(c))
	}
	return doc
}

func docToKU(doc *kuDoc) *learning.KnowledgeUnit {
	ku := &learning.KnowledgeUnit{
		ID:           learning.KnowledgeUnitID(doc.ID),
		Kind:         learning.KnowledgeKind(doc.Kind),
		Description:  doc.Description,
		Importance:   doc.Importance,
		MasteryLevel: doc.MasteryLevel,
	}
	for _, ref := range doc.DocumentReferences {
		ku.DocumentReferences = append(ku.DocumentReferences, learning.DocumentID(ref))
	}
	if doc.TargetClaim != nil {
		c := docToClaim(*doc.TargetClaim)
		ku.TargetClaim = &c
	}
	for _, c := range doc.SourceClaims {
		ku.SourceClaims = append(ku.SourceClaims, docToClaim(c))
	}
	return ku
}

func claimToDoc(c learning.Claim) claimDoc {
	return claimDoc{
		Text:        c.Text,
		DocID:       string(c.DocID),
		DocLocation: string(c.DocLocation),
	}
}

func docToClaim(doc claimDoc) learning.Claim {
	return learning.Claim{
		Text:        doc.Text,
		DocID:       learning.DocumentID(doc.DocID),
		DocLocation: learning.DocLocation(doc.DocLocation),
	}
}

func sessionToDoc(s *learning.StudySession) sessionDoc {
	doc := sessionDoc{
		ID:           string(s.ID),
		MaxQuestions: s.MaxQuestions,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
	}
	for _, id := range s.KnowledgeUnitIDs {
		doc.KnowledgeUnitIDs = append(doc.KnowledgeUnitIDs, string(id))
	}
	// Questions are stored in registration order.
	for _, sq := range s.OrderedQuestions() {
		doc.Questions = append(doc.Questions, sessionQuestionToDoc(sq))
	}
	return doc
}

func docToSession(doc *sessionDoc) *learning.StudySession {
	s := &learning.StudySession{
		ID:           learning.StudySessionID(doc.ID),
		MaxQuestions: doc.MaxQuestions,
		Questions:    make(map[learning.QuestionID]*learning.SessionQuestion),
		StartedAt:    doc.StartedAt,
		EndedAt:      doc.EndedAt,
	}
	for _, id := range doc.KnowledgeUnitIDs {
		s.KnowledgeUnitIDs = append(s.KnowledgeUnitIDs, learning.KnowledgeUnitID(id))
	}
	for i := range doc.Questions {
		sq := docToSessionQuestion(&doc.Questions[i])
		s.Questions[sq.QuestionID] = sq
		s.QuestionOrder = append(s.QuestionOrder, sq.QuestionID)
	}
	return s
}

func sessionQuestionToDoc(sq *learning.SessionQuestion) sessionQuestionDoc {
	doc := sessionQuestionDoc{
		QuestionID:      string(sq.QuestionID),
		KnowledgeUnitID: string(sq.KnowledgeUnitID),
		LastAnsweredAt:  sq.LastAnsweredAt,
	}
	for _, a := range sq.Attempts {
		doc.Attempts = append(doc.Attempts, attemptToDoc(a))
	}
	return doc
}

func docToSessionQuestion(doc *sessionQuestionDoc) *learning.SessionQuestion {
	sq := &learning.SessionQuestion{
		QuestionID:      learning.QuestionID(doc.QuestionID),
		KnowledgeUnitID: learning.KnowledgeUnitID(doc.KnowledgeUnitID),
		LastAnsweredAt:  doc.LastAnsweredAt,
	}
	for _, a := range doc.Attempts {
		sq.Attempts = append(sq.Attempts, docToAttempt(a))
	}
	return sq
}

func attemptToDoc(a learning.AnswerAttempt) attemptDoc {
	doc := attemptDoc{
		UserAnswer: a.UserAnswer,
		AnsweredAt: a.AnsweredAt,
	}
	if a.Assessment != nil {
		doc.Assessment = &assessmentDoc{
			IsCorrect:     a.Assessment.IsCorrect,
			CorrectAnswer: a.Assessment.CorrectAnswer,
			Explanation:   a.Assessment.Explanation,
			Confidence:    a.Assessment.Confidence,
			AssessedAt:    a.Assessment.AssessedAt,
		}
	}
	return doc
}

func docToAttempt(doc attemptDoc) learning.AnswerAttempt {
	a := learning.AnswerAttempt{
		UserAnswer: doc.UserAnswer,
		AnsweredAt: doc.AnsweredAt,
	}
	if doc.Assessment != nil {
		a.Assessment = &learning.AnswerAssessment{
			IsCorrect:     doc.Assessment.IsCorrect,
			CorrectAnswer: doc.Assessment.CorrectAnswer,
			Explanation:   doc.Assessment.Explanation,
			Confidence:    doc.Assessment.Confidence,
			AssessedAt:    doc.Assessment.AssessedAt,
		}
	}
	return a
}
