package http

import "context"

type key string

const appID key = "app"

// GetAppIDFromContext returns a source app ID from a context
func GetAppIDFromContext(ctx context.Context) (int, bool) {
	val := ctx.Value(appID)
	id, ok := val.(int)
	return id, ok
}

// WithAppID stores a source app ID in the context
func WithAppID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, appID, id)
}
