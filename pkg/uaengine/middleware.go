package uaengine

import "net/http"

// Middleware classifies the request's User-Agent header through the given
// engine and stores the result on the request context, where handlers
// retrieve it with FromContext. Pass nil to use the default engine.
func Middleware(engine *Engine) func(http.Handler) http.Handler {
	if engine == nil {
		engine = defaultEngine
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := engine.Parse(r.UserAgent())
			next.ServeHTTP(w, r.WithContext(SetToContext(r.Context(), ua)))
		})
	}
}
