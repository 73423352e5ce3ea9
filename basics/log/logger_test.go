package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.ErrorLevel, Level("error"))
	assert.Equal(t, zapcore.InfoLevel, Level("INFO"))
	assert.Equal(t, zapcore.DebugLevel, Level("debug"))
	assert.Equal(t, zapcore.WarnLevel, Level("warn"))
	assert.Equal(t, zapcore.WarnLevel, Level(""))
	assert.Equal(t, zapcore.WarnLevel, Level("verbose"))
}

func TestNewLogger_Console(t *testing.T) {
	t.Setenv("LOGGING_OUTPUT", "")
	t.Setenv("LOGGING_LEVEL", "debug")

	logger, console := NewLogger("test")
	assert.NotNil(t, logger)
	assert.True(t, console)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_File(t *testing.T) {
	t.Setenv("LOGGING_OUTPUT", "file")
	t.Setenv("LOGGING_TARGET", t.TempDir())
	t.Setenv("LOGGING_TYPE", "json")
	t.Setenv("LOGGING_LEVEL", "")

	logger, console := NewLogger("test")
	assert.NotNil(t, logger)
	assert.False(t, console)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}
