package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is the audit row written for every model call. It
// keeps enough to attribute spend and chase failures without storing
// prompt or response bodies.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backend name: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Model ID that served the request"),
		field.String("purpose").
			Comment("Caller label such as question-gen, answer-eval, ku-extract"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the call"),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Empty on success"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
