package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/abhisek/studiq/internal/learning"
	"github.com/abhisek/studiq/internal/llm"
)

// Config holds configuration for the LLM evaluator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Grading wants low temperature.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// LLMEvaluator grades answers with an LLM judge.
type LLMEvaluator struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// New creates an LLM-backed evaluator.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, cfg: cfg, now: time.Now}
}

// assessmentOutput is the raw LLM response.
type assessmentOutput struct {
	IsCorrect   bool    `json:"is_correct"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"confidence"`
}

// EvaluateAnswer grades the answer against the question's canonical answer.
// Transport failures propagate as errors; a response the judge produced but
// that cannot be parsed fails closed as an incorrect assessment.
func (e *LLMEvaluator) EvaluateAnswer(ctx context.Context, question *learning.Question, answer learning.Answer) (learning.AnswerAssessment, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	userMsg, err := buildAssessmentMessage(question, answer)
	if err != nil {
		return learning.AnswerAssessment{}, fmt.Errorf("build assessment prompt: %w", err)
	}

	req := llm.Request{
		System: assessmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return learning.AnswerAssessment{}, fmt.Errorf("LLM evaluation failed: %w", err)
	}

	var raw assessmentOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		// The judge produced something unusable. Fail closed rather
		// than guess: mark incorrect and surface the canonical answer.
		return learning.AnswerAssessment{
			IsCorrect:     false,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   "The answer could not be verified automatically.",
			Confidence:    0,
			AssessedAt:    e.now().UTC(),
		}, nil
	}

	return learning.AnswerAssessment{
		IsCorrect:     raw.IsCorrect,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   raw.Explanation,
		Confidence:    clampConfidence(raw.Confidence),
		AssessedAt:    e.now().UTC(),
	}, nil
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

const assessmentSystemPrompt = `You are a strict but fair study-session grader. You are given a question, the canonical correct answer, and a learner's answer. Decide whether the learner's answer is correct.

Instructions:
- Judge semantic equivalence, not exact wording. "100C" and "one hundred degrees Celsius" are the same answer.
- Partial answers that omit an essential part of the canonical answer are incorrect.
- Do not reward confident-sounding but wrong answers.
- Keep the explanation to one or two sentences, addressed directly to the learner.
- Provide a confidence score (0.0 to 1.0) in your judgement.`

var assessmentUserTemplate = template.Must(template.New("assessment").Parse(`Question: {{.QuestionText}}
Canonical answer: {{.CorrectAnswer}}
Learner's answer: {{.LearnerAnswer}}`))

func buildAssessmentMessage(question *learning.Question, answer learning.Answer) (string, error) {
	var buf bytes.Buffer
	err := assessmentUserTemplate.Execute(&buf, struct {
		QuestionText  string
		CorrectAnswer learning.Answer
		LearnerAnswer learning.Answer
	}{
		QuestionText:  question.Text,
		CorrectAnswer: question.CorrectAnswer,
		LearnerAnswer: answer,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
