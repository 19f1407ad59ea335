package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		json      bool
		debug     bool
		wantDebug bool
	}{
		{name: "console info", json: false, debug: false, wantDebug: false},
		{name: "console debug", json: false, debug: true, wantDebug: true},
		{name: "json info", json: true, debug: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.json, tt.debug)
			require.NoError(t, err)
			require.NotNil(t, logger)

			assert.Equal(t, tt.wantDebug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("  short  ", 10))
	assert.Equal(t, "abc...", TruncateForLog("abcdef", 3))
	assert.Equal(t, "", TruncateForLog("abc", 0))
	assert.Equal(t, "résu...", TruncateForLog("résumé", 4))
}
