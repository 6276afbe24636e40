package observers

import "log/slog"

// NewDefaultLoggingObserver creates a logging observer on slog.Default() tagged with the component name
func NewDefaultLoggingObserver() *LoggingObserver {
	return NewLoggingObserver(slog.Default().With("component", "points"))
}
