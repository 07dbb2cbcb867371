package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorBeforeInitIsNoop(t *testing.T) {
	errorLogger = nil
	assert.NotPanics(t, func() {
		LogError(errors.New("boom"), "early call")
	})
}

func TestInitLoggerAndLogError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_DIR", dir)

	require.NoError(t, InitLogger())
	t.Cleanup(func() { errorLogger, panicLogger = nil, nil })

	LogError(errors.New("connection refused"), "payment gateway")

	data, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)

	line := string(data)
	assert.Contains(t, line, "ERROR")
	assert.Contains(t, line, "payment gateway")
	assert.Contains(t, line, "connection refused")
	assert.Contains(t, line, "logger_test.go")

	// panic log file is created too
	_, err = os.Stat(filepath.Join(dir, "panics.log"))
	assert.NoError(t, err)
}
