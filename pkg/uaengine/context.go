package uaengine

import (
	"context"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

type uaContextKey struct{}

// SetToContext stores a classified UA on the context.
func SetToContext(ctx context.Context, ua *useragent.UserAgent) context.Context {
	return context.WithValue(ctx, uaContextKey{}, ua)
}

// FromContext returns the classified UA stored by Middleware or
// SetToContext, or nil when absent.
func FromContext(ctx context.Context) *useragent.UserAgent {
	ua, _ := ctx.Value(uaContextKey{}).(*useragent.UserAgent)
	return ua
}
