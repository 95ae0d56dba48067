package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels recorded on request events.
const (
	PurposeAuthoring = "pack-authoring"
	PurposeUnknown   = "unknown"
)

// WithPurpose tags the context with the reason for the upcoming request.
// The logging decorator reads it when it writes the request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or PurposeUnknown if the
// context carries none.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}
