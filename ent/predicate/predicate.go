// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningPlan is the predicate function for learningplan builders.
type LearningPlan func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
