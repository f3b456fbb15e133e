package uafacts

import (
	"context"
	"log/slog"
)

// factsContextKey is the key for storing a Facts table in context.
type factsContextKey struct{}

// WithContext stores a fact table in the context.
func WithContext(ctx context.Context, f *Facts) context.Context {
	return context.WithValue(ctx, factsContextKey{}, f)
}

// FromContext retrieves the fact table from the context. It returns nil
// when no table was stored; all Facts accessors tolerate a nil receiver,
// so call sites can use the result without checking.
func FromContext(ctx context.Context) *Facts {
	if ctx == nil {
		return nil
	}
	f, _ := ctx.Value(factsContextKey{}).(*Facts)
	return f
}

// LoggerExtractor returns a context extractor that emits the request's
// browser identity as a "browser" attribute, for use with logger
// context-extractor options.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if f := FromContext(ctx); f != nil {
			return slog.String("browser", f.ShortIdentifier()), true
		}
		return slog.Attr{}, false
	}
}
