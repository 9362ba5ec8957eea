// Package logger builds *slog.Logger values for signalforge commands and
// provides attribute helpers with consistent keys.
//
// New creates a logger from functional options. The handler is wrapped in a
// LogHandlerDecorator that runs registered ContextExtractor callbacks on every
// record, so values stored in a context.Context show up in the output without
// being passed explicitly:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.DebugContext(ctx, "rule failed",
//		logger.Field("items.2.name"),
//		logger.Rule("max"),
//	)
//
// Libraries in this module never create loggers on their own. They accept one
// through an option and fall back to Discard.
//
// Error and Errors return an empty attribute for nil errors, which slog
// omits, so they can be passed unconditionally.
package logger
