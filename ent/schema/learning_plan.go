package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningPlan stores one full LearningPlan aggregate as a JSON document.
// The plan is the unit of consistency: every load and save covers the
// whole tree (plan, sessions, session questions, attempts).
type LearningPlan struct {
	ent.Schema
}

func (LearningPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			NotEmpty().
			Comment("Domain identifier of the aggregate"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized aggregate tree"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the plan was created"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set when the plan is completed; active plans have none"),
	}
}

func (LearningPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("completed_at"),
	}
}
