package llm

import "context"

// PurposeUnknown is what PurposeFrom reports for a context that never
// went through WithPurpose.
const PurposeUnknown = "unknown"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context with what the request is for
// ("question-gen", "chat", "unit-review"). The logging decorator writes
// the tag into each request event so `chemcat llm` can group them.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, PurposeUnknown if absent.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok && p != "" {
		return p
	}
	return PurposeUnknown
}
