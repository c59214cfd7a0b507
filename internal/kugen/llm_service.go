package kugen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
)

// Config holds configuration for the LLM extractor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Extraction output scales with the
// document, so the token budget is generous.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.3,
	}
}

// LLMService implements Service using the LLM provider.
type LLMService struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-backed knowledge-unit extractor.
func New(provider llm.Provider, cfg Config) *LLMService {
	return &LLMService{provider: provider, cfg: cfg}
}

type claimOutput struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type factOutput struct {
	Description   string `json:"description"`
	TargetClaimID int    `json:"target_claim_id"`
}

type skillOutput struct {
	Description    string `json:"description"`
	SourceClaimIDs []int  `json:"source_claim_ids"`
}

type extractionOutput struct {
	Claims []claimOutput `json:"claims"`
	Facts  []factOutput  `json:"facts"`
	Skills []skillOutput `json:"skills"`
}

// GenerateKnowledgeUnits extracts facts and skills from the document.
// Facts and skills referencing claim ids the model never declared are an
// error: the whole extraction is rejected rather than silently thinned.
func (s *LLMService) GenerateKnowledgeUnits(ctx context.Context, doc learning.Document) ([]*learning.KnowledgeUnit, error) {
	ctx = llm.WithPurpose(ctx, "ku-extract")

	req := llm.Request{
		System: extractionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExtractionMessage(doc.Text)},
		},
		Schema:      ExtractionSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM extraction failed: %w", err)
	}

	var raw extractionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	claims := make(map[int]learning.Claim, len(raw.Claims))
	for _, c := range raw.Claims {
		claims[c.ID] = learning.Claim{Text: c.Text, DocID: doc.ID}
	}

	units := make([]*learning.KnowledgeUnit, 0, len(raw.Facts)+len(raw.Skills))

	for _, f := range raw.Facts {
		target, ok := claims[f.TargetClaimID]
		if !ok {
			return nil, fmt.Errorf("fact %q references unknown claim id %d", f.Description, f.TargetClaimID)
		}
		units = append(units, learning.NewFactKnowledge(
			learning.KnowledgeUnitID(uuid.NewString()), f.Description, target))
	}

	for _, sk := range raw.Skills {
		sources := make([]learning.Claim, 0, len(sk.SourceClaimIDs))
		for _, id := range sk.SourceClaimIDs {
			c, ok := claims[id]
			if !ok {
				return nil, fmt.Errorf("skill %q references unknown claim id %d", sk.Description, id)
			}
			sources = append(sources, c)
		}
		units = append(units, learning.NewSkillKnowledge(
			learning.KnowledgeUnitID(uuid.NewString()), sk.Description, sources))
	}

	return units, nil
}
