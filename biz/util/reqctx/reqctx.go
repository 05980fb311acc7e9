// Package reqctx carries per-request values that outlive a single layer,
// such as the log id set by the trace middleware.
package reqctx

import "context"

type logIDCtxKey struct{}

func WithLogID(ctx context.Context, logID string) context.Context {
	return context.WithValue(ctx, logIDCtxKey{}, logID)
}

// LogID is empty for contexts that never went through the trace middleware.
func LogID(ctx context.Context) string {
	logID, _ := ctx.Value(logIDCtxKey{}).(string)
	return logID
}
