package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/studiq/internal/learning"
)

// fixturePlan builds a fully-populated aggregate: two knowledge units
// (fact and skill), one session with graded and ungraded attempts.
func fixturePlan(t *testing.T) *learning.LearningPlan {
	t.Helper()

	claim := learning.Claim{Text: "Water boils at 100C at sea level.", DocID: "doc-1", DocLocation: "p3"}
	units := []*learning.KnowledgeUnit{
		learning.NewFactKnowledge("ku-1", "Boiling point of water", claim),
		learning.NewSkillKnowledge("ku-2", "Relate pressure and boiling point", []learning.Claim{claim}),
	}
	units[0].Importance = 0.8
	units[0].MasteryLevel = 0.5

	plan := learning.NewLearningPlan("plan-1", units)
	session, err := plan.StartSession(3)
	require.NoError(t, err)

	require.NoError(t, session.RegisterQuestion("q1", "ku-1"))
	require.NoError(t, session.RegisterQuestion("q2", "ku-2"))

	sq, _ := session.Question("q1")
	sq.SubmitAnswer("100")
	attempt, ok := sq.LatestUnassessedAttempt()
	require.True(t, ok)
	require.NoError(t, sq.AttachAssessment(attempt, learning.AnswerAssessment{
		IsCorrect:     true,
		CorrectAnswer: "100C",
		Explanation:   "Exact match.",
		Confidence:    0.98,
		AssessedAt:    time.Now().UTC(),
	}))

	sq2, _ := session.Question("q2")
	sq2.SubmitAnswer("it goes down")

	return plan
}

func TestPlanSerde_RoundTrip(t *testing.T) {
	plan := fixturePlan(t)

	m, err := encodePlan(plan)
	require.NoError(t, err)

	got, err := decodePlan(m)
	require.NoError(t, err)

	require.Equal(t, plan.ID, got.ID)
	require.True(t, plan.CreatedAt.Equal(got.CreatedAt))
	require.Nil(t, got.CompletedAt)

	// Knowledge unit variants survive with their payloads.
	require.Len(t, got.KnowledgeUnits, 2)
	fact := got.KnowledgeUnits[0]
	require.Equal(t, learning.KindFact, fact.Kind)
	require.NotNil(t, fact.TargetClaim)
	require.Equal(t, "doc-1", string(fact.TargetClaim.DocID))
	require.Equal(t, 0.5, fact.MasteryLevel)
	skill := got.KnowledgeUnits[1]
	require.Equal(t, learning.KindSkill, skill.Kind)
	require.Len(t, skill.SourceClaims, 1)

	// Session state, registration order and attempt history survive.
	require.Len(t, got.Sessions, 1)
	session := got.Sessions[0]
	require.Equal(t, 3, session.MaxQuestions)
	require.Equal(t,
		[]learning.QuestionID{"q1", "q2"},
		session.QuestionOrder)

	sq, ok := session.Question("q1")
	require.True(t, ok)
	require.Equal(t, learning.StatusCorrect, sq.Status())
	require.Len(t, sq.Attempts, 1)
	require.NotNil(t, sq.Attempts[0].Assessment)
	require.Equal(t, 0.98, sq.Attempts[0].Assessment.Confidence)

	sq2, ok := session.Question("q2")
	require.True(t, ok)
	require.Equal(t, learning.StatusPending, sq2.Status())
	require.NotNil(t, sq2.LastAnsweredAt)
}

func TestMemoryPlanRepo_LoadSaveIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPlanRepo()
	plan := fixturePlan(t)

	require.NoError(t, repo.Save(ctx, plan))

	// Mutating a loaded copy must not leak into the store until saved.
	loaded, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	loaded.Complete()

	fresh, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.False(t, fresh.IsCompleted())

	require.NoError(t, repo.Save(ctx, loaded))
	fresh, err = repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	require.True(t, fresh.IsCompleted())
}

func TestMemoryPlanRepo_ListActive(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPlanRepo()

	active := learning.NewLearningPlan("active", nil)
	done := learning.NewLearningPlan("done", nil)
	done.Complete()

	require.NoError(t, repo.Save(ctx, active))
	require.NoError(t, repo.Save(ctx, done))

	plans, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, learning.LearningPlanID("active"), plans[0].ID)
}

func TestMemoryPlanRepo_GetMissing(t *testing.T) {
	repo := NewMemoryPlanRepo()
	plan, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, plan)
}

func TestMemoryQuestionRepo_Order(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryQuestionRepo()

	for _, id := range []learning.QuestionID{"q1", "q2", "q3"} {
		require.NoError(t, repo.Save(ctx, &learning.Question{ID: id, KnowledgeUnitID: "ku-1"}))
	}
	// Re-saving must not duplicate.
	require.NoError(t, repo.Save(ctx, &learning.Question{ID: "q2", KnowledgeUnitID: "ku-1"}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, learning.QuestionID("q1"), all[0].ID)
}
