// Package observers provides observers for monitoring junction arrivals
package observers

import (
	"context"
	"log/slog"

	"github.com/anggasct/points"
)

// LoggingObserver logs junction arrivals through slog.
// Routed arrivals are logged at Debug, blocked ones at Warn and errors at Error.
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer; a nil logger means slog.Default()
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEnter logs a routed arrival
func (o *LoggingObserver) OnEnter(event points.EnterEvent) {
	if event.Blocked() {
		return
	}
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, "junction_enter", eventAttrs(event)...)
}

// OnBlocked logs an arrival with no valid exit
func (o *LoggingObserver) OnBlocked(event points.EnterEvent) {
	o.logger.LogAttrs(context.Background(), slog.LevelWarn, "junction_blocked", eventAttrs(event)...)
}

// OnError logs errors
func (o *LoggingObserver) OnError(err error) {
	o.logger.Error("junction_error", "err", err)
}

func eventAttrs(event points.EnterEvent) []slog.Attr {
	junction := event.JunctionName
	if junction == "" {
		junction = event.JunctionID
	}
	return []slog.Attr{
		slog.String("junction", junction),
		slog.String("type", event.Type.String()),
		slog.String("entry", event.Entry.String()),
		slog.String("exit", event.Exit.String()),
		slog.Int("from_state", event.FromState),
		slog.Int("to_state", event.ToState),
	}
}
