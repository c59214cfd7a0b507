package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
)

func factUnit() *learning.KnowledgeUnit {
	return learning.NewFactKnowledge("ku-fact", "Boiling point of water",
		learning.Claim{Text: "Water boils at 100C at sea level.", DocID: "doc-1"})
}

func skillUnit() *learning.KnowledgeUnit {
	return learning.NewSkillKnowledge("ku-skill", "Relate altitude and boiling point",
		[]learning.Claim{
			{Text: "Water boils at 100C at sea level.", DocID: "doc-1"},
			{Text: "Atmospheric pressure drops with altitude.", DocID: "doc-1"},
		})
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "At what temperature does water boil at sea level?",
		"answer": "100C",
		"difficulty_level": 1
	}`)
}

func TestGenerateNextQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	svc := New(mock, DefaultConfig())

	q, err := svc.GenerateNextQuestion(context.Background(), factUnit())
	if err != nil {
		t.Fatalf("GenerateNextQuestion: %v", err)
	}

	if q.ID == "" {
		t.Error("question must get a generated id")
	}
	if q.KnowledgeUnitID != "ku-fact" {
		t.Errorf("KnowledgeUnitID = %s, want ku-fact", q.KnowledgeUnitID)
	}
	if q.CorrectAnswer != "100C" {
		t.Errorf("CorrectAnswer = %s, want 100C", q.CorrectAnswer)
	}
	if q.Difficulty.Level != 1 {
		t.Errorf("Difficulty.Level = %d, want 1", q.Difficulty.Level)
	}
}

func TestGenerateNextQuestion_PromptDispatchesOnKind(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuestionJSON()},
		llm.MockResponse{Content: validQuestionJSON()},
	)
	svc := New(mock, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.GenerateNextQuestion(ctx, factUnit()); err != nil {
		t.Fatalf("fact generation: %v", err)
	}
	if _, err := svc.GenerateNextQuestion(ctx, skillUnit()); err != nil {
		t.Fatalf("skill generation: %v", err)
	}

	factPrompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(factPrompt, "Target claim") {
		t.Error("fact prompt missing target claim section")
	}

	skillPrompt := mock.Calls[1].Messages[0].Content
	if !strings.Contains(skillPrompt, "Source claims") {
		t.Error("skill prompt missing source claims section")
	}
	if !strings.Contains(skillPrompt, "Atmospheric pressure") {
		t.Error("skill prompt missing claim text")
	}
}

func TestGenerateQuestionsBatch(t *testing.T) {
	batch := json.RawMessage(`{
		"questions": [
			{"question_text": "Q1?", "answer": "A1", "difficulty_level": 1},
			{"question_text": "Q2?", "answer": "A2", "difficulty_level": 3},
			{"question_text": "", "answer": "dropped", "difficulty_level": 2}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	svc := New(mock, DefaultConfig())

	qs, err := svc.GenerateQuestionsBatch(context.Background(), factUnit(), 3)
	if err != nil {
		t.Fatalf("GenerateQuestionsBatch: %v", err)
	}

	// Malformed entries are skipped: fewer than requested is allowed.
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	if qs[0].Text != "Q1?" || qs[1].Text != "Q2?" {
		t.Error("batch questions out of order")
	}
	for _, q := range qs {
		if q.KnowledgeUnitID != "ku-fact" {
			t.Errorf("KnowledgeUnitID = %s, want ku-fact", q.KnowledgeUnitID)
		}
	}
}

func TestGenerateQuestionsBatch_SingleFallsThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	svc := New(mock, DefaultConfig())

	qs, err := svc.GenerateQuestionsBatch(context.Background(), factUnit(), 1)
	if err != nil {
		t.Fatalf("GenerateQuestionsBatch(1): %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
}

func TestGenerateNextQuestion_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	svc := New(mock, DefaultConfig())

	if _, err := svc.GenerateNextQuestion(context.Background(), factUnit()); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGenerateNextQuestion_DifficultyClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question_text": "Q?", "answer": "A", "difficulty_level": 9
	}`)})
	svc := New(mock, DefaultConfig())

	q, err := svc.GenerateNextQuestion(context.Background(), factUnit())
	if err != nil {
		t.Fatalf("GenerateNextQuestion: %v", err)
	}
	if q.Difficulty.Level != 2 {
		t.Errorf("Difficulty.Level = %d, want default 2 for out-of-range", q.Difficulty.Level)
	}
}
