// Package logger provides structured logging with optional Sentry integration.
//
// The package is a thin layer over the standard library's log/slog. New
// returns a JSON logger for stdout, NewNope returns a discard-everything
// logger suitable as a default, and NewWithSentry fans records out to both
// stdout and Sentry when a DSN is configured.
//
// # Basic Usage
//
//	log := logger.New()
//	log.Info("request sent", slog.Int("messages", 2))
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// If the DSN is empty or initialization fails, the logger gracefully falls
// back to stdout-only logging, making it safe to use the same code path in
// development and production.
package logger
