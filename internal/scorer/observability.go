package scorer

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single scoring request.
type CallEvent struct {
	Endpoint  string
	Terms     int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about scoring calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer as slog text records.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"endpoint", event.Endpoint,
		"terms", event.Terms,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("scorer_call", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("scorer_call", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
