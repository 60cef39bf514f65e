// Package logger builds the slog loggers used by the weibo strategy and CLI.
//
// New returns a JSON logger on stdout. NewNope returns a logger that discards
// everything and is the strategy default. NewWithSentry additionally forwards
// warnings and errors to Sentry when a DSN is configured and falls back to
// stdout-only logging otherwise.
//
// Request-scoped attributes are injected with a ContextExtractor:
//
//	log := logger.New(slog.LevelInfo, func(ctx context.Context) (slog.Attr, bool) {
//		if id := middleware.GetReqID(ctx); id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	})
package logger
