// Package logger builds configured slog.Logger instances with consistent
// defaults across services.
//
// New applies functional options over production-safe defaults (JSON
// format, INFO level, stdout). WithDevelopment and WithProduction bundle
// the usual per-environment settings, and WithContextExtractors wires
// per-record attribute injection from context values such as request IDs.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("cachekit"),
//	    logger.WithContextExtractors(admin.RequestIDExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// The attr helpers (Error, Component, CacheKey, …) keep attribute keys
// consistent across the codebase.
package logger
