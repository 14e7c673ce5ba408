// Package logger builds configured slog.Logger instances through
// functional options: level, output format (json or text), destination,
// and static attributes attached to every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "receiptcheck")),
//	)
//	log.Info("validation finished", "valid", verdict.OverallValid)
package logger
