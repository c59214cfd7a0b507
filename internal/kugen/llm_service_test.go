package kugen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
)

func testDoc() learning.Document {
	return learning.Document{
		ID: "doc-1",
		Text: "Water boils at 100C at sea level. " +
			"Atmospheric pressure drops with altitude, lowering the boiling point.",
	}
}

func extractionJSON() json.RawMessage {
	return json.RawMessage(`{
		"claims": [
			{"id": 1, "text": "Water boils at 100C at sea level."},
			{"id": 2, "text": "Atmospheric pressure drops with altitude."}
		],
		"facts": [
			{"description": "Boiling point of water at sea level", "target_claim_id": 1}
		],
		"skills": [
			{"description": "Predict boiling point changes with altitude", "source_claim_ids": [1, 2]}
		]
	}`)
}

func TestGenerateKnowledgeUnits(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON()})
	svc := New(mock, DefaultConfig())

	units, err := svc.GenerateKnowledgeUnits(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("GenerateKnowledgeUnits failed: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}

	fact := units[0]
	if fact.Kind != learning.KindFact {
		t.Errorf("units[0].Kind = %v, want fact", fact.Kind)
	}
	if fact.TargetClaim == nil || fact.TargetClaim.Text != "Water boils at 100C at sea level." {
		t.Error("fact target claim not resolved from the claim registry")
	}
	if fact.TargetClaim.DocID != "doc-1" {
		t.Errorf("claim DocID = %s, want doc-1", fact.TargetClaim.DocID)
	}
	if fact.ID == "" {
		t.Error("fact must get a generated id")
	}

	skill := units[1]
	if skill.Kind != learning.KindSkill {
		t.Errorf("units[1].Kind = %v, want skill", skill.Kind)
	}
	if len(skill.SourceClaims) != 2 {
		t.Fatalf("len(SourceClaims) = %d, want 2", len(skill.SourceClaims))
	}
	if skill.SourceClaims[1].Text != "Atmospheric pressure drops with altitude." {
		t.Error("skill source claims out of order")
	}
}

func TestGenerateKnowledgeUnits_SharedClaim(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON()})
	svc := New(mock, DefaultConfig())

	units, err := svc.GenerateKnowledgeUnits(context.Background(), testDoc())
	if err != nil {
		t.Fatalf("GenerateKnowledgeUnits failed: %v", err)
	}

	// Claim 1 backs both the fact and the skill; both resolve to the same text.
	if units[0].TargetClaim.Text != units[1].SourceClaims[0].Text {
		t.Error("shared claim must resolve to the same text in fact and skill")
	}
}

func TestGenerateKnowledgeUnits_UnknownFactClaim(t *testing.T) {
	resp := json.RawMessage(`{
		"claims": [{"id": 1, "text": "A claim."}],
		"facts": [{"description": "Broken fact", "target_claim_id": 99}],
		"skills": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := New(mock, DefaultConfig())

	_, err := svc.GenerateKnowledgeUnits(context.Background(), testDoc())
	if err == nil {
		t.Fatal("expected error for unknown claim id")
	}
	if !strings.Contains(err.Error(), "unknown claim id 99") {
		t.Errorf("error = %v, want mention of unknown claim id 99", err)
	}
}

func TestGenerateKnowledgeUnits_UnknownSkillClaim(t *testing.T) {
	resp := json.RawMessage(`{
		"claims": [{"id": 1, "text": "A claim."}],
		"facts": [],
		"skills": [{"description": "Broken skill", "source_claim_ids": [1, 7]}]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := New(mock, DefaultConfig())

	if _, err := svc.GenerateKnowledgeUnits(context.Background(), testDoc()); err == nil {
		t.Fatal("expected error for unknown claim id")
	}
}

func TestGenerateKnowledgeUnits_EmptyDocument(t *testing.T) {
	resp := json.RawMessage(`{"claims": [], "facts": [], "skills": []}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	svc := New(mock, DefaultConfig())

	units, err := svc.GenerateKnowledgeUnits(context.Background(), learning.Document{ID: "doc-empty", Text: ""})
	if err != nil {
		t.Fatalf("GenerateKnowledgeUnits failed: %v", err)
	}
	if len(units) != 0 {
		t.Errorf("len(units) = %d, want 0", len(units))
	}
}

func TestGenerateKnowledgeUnits_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := New(mock, DefaultConfig())

	if _, err := svc.GenerateKnowledgeUnits(context.Background(), testDoc()); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGenerateKnowledgeUnits_PromptContainsDocument(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: extractionJSON()})
	svc := New(mock, DefaultConfig())

	if _, err := svc.GenerateKnowledgeUnits(context.Background(), testDoc()); err != nil {
		t.Fatalf("GenerateKnowledgeUnits failed: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Water boils at 100C") {
		t.Error("prompt should contain the document text")
	}
}
