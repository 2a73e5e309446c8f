package utils

import "context"

// context key
type ctxKey string

const CtxRequestIDKey ctxKey = "request_id"

// RequestID returns the id stored by the request id middleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestIDKey).(string)
	return id
}
