package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogUsableBeforeSetup(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Info("info message", "key", "value")
		Warn("warn message")
		Error("error message", "error", "boom")
		Debug("debug message")
	})
}

func TestSetupReplacesLogger(t *testing.T) {
	before := Log
	Setup("production")
	assert.NotNil(t, Log)
	assert.NotSame(t, before, Log)
}
