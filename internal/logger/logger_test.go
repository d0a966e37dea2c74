package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoggerCaptures(t *testing.T) {
	log := NewBufferLogger()

	log.Debug("d %d", 1)
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	require.Len(t, log.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "d 1"}, log.Messages[0])
	assert.True(t, log.HasLevel("warn"))
	assert.False(t, log.HasLevel("fatal"))
}

func TestNoopDiscards(t *testing.T) {
	// Must not panic and must accept any arguments.
	log := Noop()
	log.Debug("x %s", "y")
	log.Error("z")
}

func TestEnvLoggerDebugGated(t *testing.T) {
	t.Setenv("TASKMON_DEBUG", "")
	log := New("[test]")
	// Gating is on the env var; with it unset this must be a no-op path.
	log.Debug("hidden")
}
