package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what the request is for, e.g.
// "question-gen" or "answer-eval". The logging decorator stores the
// label on the recorded event so usage can be broken down later.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" for an
// unlabeled context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
