package gql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogObserver_Levels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(CallEvent{Operation: "GetMe", Success: true, LatencyMs: 12})
	obs.OnCallComplete(CallEvent{Operation: "videoProgress", Success: false, ErrorCode: "TIMEOUT"})

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zap.DebugLevel, entries[0].Level)
		assert.Equal(t, "GetMe", entries[0].ContextMap()["operation"])
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
		assert.Equal(t, "TIMEOUT", entries[1].ContextMap()["error_code"])
	}
}
