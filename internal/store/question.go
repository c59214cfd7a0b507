package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/ent"
	"github.com/abhisek/studiq/ent/question"
	"github.com/abhisek/studiq/internal/learning"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Save(ctx context.Context, q *learning.Question) error {
	err := r.client.Question.Create().
		SetQuestionID(string(q.ID)).
		SetKnowledgeUnitID(string(q.KnowledgeUnitID)).
		SetText(q.Text).
		SetCorrectAnswer(string(q.CorrectAnswer)).
		SetDifficultyLevel(q.Difficulty.Level).
		OnConflictColumns(question.FieldQuestionID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return nil
}

func (r *questionRepo) GetByID(ctx context.Context, id learning.QuestionID) (*learning.Question, error) {
	row, err := r.client.Question.Query().
		Where(question.QuestionID(string(id))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question %s: %w", id, err)
	}
	return entQuestionToQuestion(row), nil
}

func (r *questionRepo) ListAll(ctx context.Context) ([]*learning.Question, error) {
	rows, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]*learning.Question, len(rows))
	for i, row := range rows {
		out[i] = entQuestionToQuestion(row)
	}
	return out, nil
}

func entQuestionToQuestion(row *ent.Question) *learning.Question {
	return &learning.Question{
		ID:              learning.QuestionID(row.QuestionID),
		Text:            row.Text,
		CorrectAnswer:   learning.Answer(row.CorrectAnswer),
		Difficulty:      learning.Difficulty{Level: row.DifficultyLevel},
		KnowledgeUnitID: learning.KnowledgeUnitID(row.KnowledgeUnitID),
	}
}
