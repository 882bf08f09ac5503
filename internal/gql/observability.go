package gql

import "go.uber.org/zap"

// CallEvent records metadata about a single GraphQL call.
type CallEvent struct {
	Operation string
	Endpoint  string
	RequestID string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about GraphQL calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a zap logger at debug level, failures at warn.
type LogObserver struct {
	log *zap.Logger
}

func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("operation", event.Operation),
		zap.String("endpoint", event.Endpoint),
		zap.String("request_id", event.RequestID),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if !event.Success {
		o.log.Warn("graphql call failed", append(fields, zap.String("error_code", event.ErrorCode))...)
		return
	}
	o.log.Debug("graphql call", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
