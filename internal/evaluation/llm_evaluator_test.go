package evaluation

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
)

func testQuestion() *learning.Question {
	return &learning.Question{
		ID:              "q-1",
		Text:            "At what temperature does water boil at sea level?",
		CorrectAnswer:   "100C",
		Difficulty:      learning.Difficulty{Level: 1},
		KnowledgeUnitID: "ku-1",
	}
}

func TestEvaluateAnswer_Correct(t *testing.T) {
	resp := json.RawMessage(`{"is_correct":true,"explanation":"That is right.","confidence":0.95}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := New(mock, DefaultConfig())

	a, err := e.EvaluateAnswer(context.Background(), testQuestion(), "one hundred degrees Celsius")
	if err != nil {
		t.Fatalf("EvaluateAnswer failed: %v", err)
	}
	if !a.IsCorrect {
		t.Error("IsCorrect = false, want true")
	}
	if a.CorrectAnswer != "100C" {
		t.Errorf("CorrectAnswer = %q, want 100C", a.CorrectAnswer)
	}
	if a.Confidence != 0.95 {
		t.Errorf("Confidence = %f, want 0.95", a.Confidence)
	}
	if a.AssessedAt.IsZero() {
		t.Error("AssessedAt not set")
	}
}

func TestEvaluateAnswer_Incorrect(t *testing.T) {
	resp := json.RawMessage(`{"is_correct":false,"explanation":"Water boils at 100C, not 90C.","confidence":0.99}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := New(mock, DefaultConfig())

	a, err := e.EvaluateAnswer(context.Background(), testQuestion(), "90C")
	if err != nil {
		t.Fatalf("EvaluateAnswer failed: %v", err)
	}
	if a.IsCorrect {
		t.Error("IsCorrect = true, want false")
	}
	if a.Explanation == "" {
		t.Error("explanation is empty")
	}
}

func TestEvaluateAnswer_UnparseableFailsClosed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	e := New(mock, DefaultConfig())

	a, err := e.EvaluateAnswer(context.Background(), testQuestion(), "100C")
	if err != nil {
		t.Fatalf("EvaluateAnswer failed: %v", err)
	}
	if a.IsCorrect {
		t.Error("unparseable judge output must not grade correct")
	}
	if a.CorrectAnswer != "100C" {
		t.Errorf("CorrectAnswer = %q, want canonical answer attached", a.CorrectAnswer)
	}
	if a.Confidence != 0 {
		t.Errorf("Confidence = %f, want 0", a.Confidence)
	}
}

func TestEvaluateAnswer_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → ErrProviderUnavailable
	e := New(mock, DefaultConfig())

	_, err := e.EvaluateAnswer(context.Background(), testQuestion(), "100C")
	if err == nil {
		t.Error("expected error from empty mock provider")
	}
}

func TestEvaluateAnswer_ConfidenceClamped(t *testing.T) {
	resp := json.RawMessage(`{"is_correct":true,"explanation":"ok","confidence":1.7}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	e := New(mock, DefaultConfig())

	a, err := e.EvaluateAnswer(context.Background(), testQuestion(), "100C")
	if err != nil {
		t.Fatalf("EvaluateAnswer failed: %v", err)
	}
	if a.Confidence != 1.0 {
		t.Errorf("Confidence = %f, want clamped to 1.0", a.Confidence)
	}
}

func TestBuildAssessmentMessage(t *testing.T) {
	msg, err := buildAssessmentMessage(testQuestion(), "95C")
	if err != nil {
		t.Fatalf("buildAssessmentMessage failed: %v", err)
	}
	if !strings.Contains(msg, "water boil") {
		t.Error("message should contain question text")
	}
	if !strings.Contains(msg, "100C") {
		t.Error("message should contain canonical answer")
	}
	if !strings.Contains(msg, "95C") {
		t.Error("message should contain learner answer")
	}
}
