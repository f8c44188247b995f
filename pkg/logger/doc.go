// Package logger builds *slog.Logger instances for fintrack tools and
// keeps attribute names consistent across packages.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the chosen slog handler with a decorator that
// pulls request- or session-scoped values out of context.Context on every
// record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formcheck"),
//	    logger.WithContextValue("form_id", formIDKey),
//	)
//	log.DebugContext(ctx, "field validation failed",
//	    logger.Field("email"),
//	    logger.Rule("email"),
//	)
//
// Error and Errors return empty attributes for nil errors so call sites need
// no nil checks.
package logger
