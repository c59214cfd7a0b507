package store

import (
	"context"
	"testing"

	"github.com/abhisek/studiq/internal/learning"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPlanRepo_SaveAndReload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.PlanRepo()

	plan := learning.NewLearningPlan("plan-ent", []*learning.KnowledgeUnit{
		learning.NewFactKnowledge("ku-1", "fact", learning.Claim{Text: "c", DocID: "d"}),
	})
	session, err := plan.StartSession(2)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if err := session.RegisterQuestion("q1", "ku-1"); err != nil {
		t.Fatalf("RegisterQuestion: %v", err)
	}

	if err := repo.Save(ctx, plan); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, plan.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("plan not found after save")
	}
	if len(got.Sessions) != 1 || len(got.Sessions[0].Questions) != 1 {
		t.Errorf("reloaded aggregate incomplete: %d sessions", len(got.Sessions))
	}

	// Saving again must update in place, not duplicate.
	got.Complete()
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, p := range active {
		if p.ID == plan.ID {
			t.Error("completed plan still listed as active")
		}
	}
}

func TestQuestionRepo_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.QuestionRepo()

	q := &learning.Question{
		ID:              "q-ent",
		Text:            "What is 2+2?",
		CorrectAnswer:   "4",
		Difficulty:      learning.Difficulty{Level: 1},
		KnowledgeUnitID: "ku-1",
	}
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByID(ctx, "q-ent")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Text != q.Text || got.KnowledgeUnitID != "ku-1" {
		t.Errorf("GetByID = %+v, want %+v", got, q)
	}

	missing, err := repo.GetByID(ctx, "absent")
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing question")
	}
}
