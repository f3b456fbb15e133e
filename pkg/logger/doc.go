// Package logger builds configured log/slog loggers with context-aware
// attribute injection.
//
// New applies functional options over production-safe defaults (JSON
// output at INFO level). NewFromEnv reads LOG_LEVEL and LOG_FORMAT from
// the environment instead, for applications configured entirely via env
// vars.
//
// The distinguishing feature is ContextExtractor support: extractors
// registered with WithContextExtractors run on every log call and pull
// request-scoped values out of the context, so handlers log attributes
// like the client browser without threading them manually:
//
//	log, err := logger.NewFromEnv("api",
//	    logger.WithContextExtractors(uafacts.LoggerExtractor()),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	// inside a handler behind uafacts.Middleware:
//	log.InfoContext(r.Context(), "page served") // carries browser=...
package logger
