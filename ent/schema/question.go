package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question stores a canonical generated question. Sessions reference
// questions by ID only; this table acts as the reference table for
// the separately-persisted LearningPlan aggregate.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			NotEmpty().
			Comment("Domain identifier of the question"),
		field.String("knowledge_unit_id").
			NotEmpty().
			Comment("Knowledge unit this question was generated for"),
		field.Text("text").
			Comment("The question prompt"),
		field.String("correct_answer").
			Comment("Canonical correct answer"),
		field.Int("difficulty_level").
			Default(2).
			Comment("Generator-assessed difficulty, 1 to 5"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("knowledge_unit_id"),
	}
}
