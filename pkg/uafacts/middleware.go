package uafacts

import "net/http"

// Middleware builds a fact table from the request's User-Agent header and
// stores it in the request context. The table is built once per request;
// individual facts still resolve lazily on first read.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWithOptions()(next)
}

// MiddlewareWithOptions is Middleware with construction options, e.g. a
// capability probe shared by all requests.
func MiddlewareWithOptions(opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f := FromRequest(r, opts...)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), f)))
		})
	}
}
