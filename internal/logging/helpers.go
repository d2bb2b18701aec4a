package logging

import "log/slog"

// Nil-tolerant logging helpers. Callers hand these whatever logger they
// hold, nil included, instead of guarding every call site.

// Info emits an info-level record. A nil logger drops it.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Info(msg, args...)
}

// Warn emits a warn-level record. A nil logger drops it.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, args...)
}

// Error emits an error-level record, appending err as an attribute when
// present. A nil logger drops it.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
