package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"interval", "path", "config", "mock", "no-color"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestRootHasNoSubcommands(t *testing.T) {
	assert.Empty(t, rootCmd.Commands())
}

func TestIntervalDefault(t *testing.T) {
	f := rootCmd.Flags().Lookup("interval")
	require.NotNil(t, f)
	assert.Equal(t, time.Second.String(), f.DefValue)
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	assert.Contains(t, rootCmd.Version, "1.2.3")
	assert.Contains(t, rootCmd.Version, "abc123")
}
