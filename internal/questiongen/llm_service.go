package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
)

// LLMService implements Service using the LLM provider.
type LLMService struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMService with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMService {
	return &LLMService{provider: provider, config: cfg}
}

// questionOutput is the raw per-question LLM response before conversion.
type questionOutput struct {
	QuestionText    string `json:"question_text"`
	Answer          string `json:"answer"`
	DifficultyLevel int    `json:"difficulty_level"`
}

type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

// GenerateNextQuestion produces a single question for the unit.
func (s *LLMService) GenerateNextQuestion(ctx context.Context, ku *learning.KnowledgeUnit) (*learning.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(ku, 1)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return rawToQuestion(raw, ku), nil
}

// GenerateQuestionsBatch produces up to count diverse questions in one
// request. Malformed entries are skipped, so the result may be shorter
// than requested.
func (s *LLMService) GenerateQuestionsBatch(ctx context.Context, ku *learning.KnowledgeUnit, count int) ([]*learning.Question, error) {
	if count <= 0 {
		return nil, nil
	}
	if count == 1 {
		q, err := s.GenerateNextQuestion(ctx, ku)
		if err != nil {
			return nil, err
		}
		return []*learning.Question{q}, nil
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(ku, count)},
		},
		Schema:      QuestionBatchSchema,
		MaxTokens:   s.config.MaxTokens * count,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM batch generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM batch response: %w", err)
	}

	questions := make([]*learning.Question, 0, count)
	for _, item := range raw.Questions {
		if item.QuestionText == "" || item.Answer == "" {
			continue
		}
		questions = append(questions, rawToQuestion(item, ku))
		if len(questions) == count {
			break
		}
	}
	return questions, nil
}

func rawToQuestion(raw questionOutput, ku *learning.KnowledgeUnit) *learning.Question {
	level := raw.DifficultyLevel
	if level < 1 || level > 5 {
		level = 2
	}
	return &learning.Question{
		ID:              learning.QuestionID(uuid.NewString()),
		Text:            raw.QuestionText,
		CorrectAnswer:   learning.Answer(raw.Answer),
		Difficulty:      learning.Difficulty{Level: level},
		KnowledgeUnitID: ku.ID,
	}
}
