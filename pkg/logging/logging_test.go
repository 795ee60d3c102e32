package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		SetupLoggerWithOptions(Options{Verbosity: tt.verbosity, Console: &buf, DisableFile: true, NoColor: true})
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func TestSetupLoggerWritesConsoleAndFile(t *testing.T) {
	t.Cleanup(func() {
		_ = Close()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "nested", "filestate.log")

	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf, LogFile: logPath, NoColor: true})
	logger := GetLogger("reconcile")
	logger.Info().Str("path", "/tmp/myfile.txt").Msg("reconciled")

	assert.Contains(t, buf.String(), "reconciled")
	assert.Contains(t, buf.String(), "/tmp/myfile.txt")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"reconcile"`)
	assert.Contains(t, string(data), `"message":"reconciled"`)
}

func TestSetupLoggerFallsBackToConsole(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	// A regular file where the log directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 0, Console: &buf, LogFile: filepath.Join(blocker, "x.log"), NoColor: true})

	assert.Contains(t, buf.String(), "Failed to create log file")
}

func TestSetupLoggerUsesStateHome(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(func() {
		_ = Close()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	SetupLogger(1)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := GetLogger("cli")
	logger.Info().Msg("state home entry")

	data, err := os.ReadFile(filepath.Join(xdg.StateHome, "filestate", "filestate.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "state home entry")
}

func TestSetupLoggerClosesPreviousFile(t *testing.T) {
	t.Cleanup(func() {
		_ = Close()
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf, LogFile: first, NoColor: true})
	firstHandle := openFile
	require.NotNil(t, firstHandle)

	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf, LogFile: second, NoColor: true})
	require.NotNil(t, openFile)
	assert.NotSame(t, firstHandle, openFile)

	_, err := firstHandle.WriteString("late\n")
	assert.ErrorIs(t, err, os.ErrClosed)

	log.Info().Msg("after reconfigure")
	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "after reconfigure")

	data, err = os.ReadFile(first)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after reconfigure")
}

func TestCloseKeepsConsole(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	logPath := filepath.Join(t.TempDir(), "filestate.log")

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf, LogFile: logPath, NoColor: true})
	handle := openFile

	require.NoError(t, Close())
	assert.Nil(t, openFile)
	_, err := handle.WriteString("x")
	assert.ErrorIs(t, err, os.ErrClosed)

	log.Info().Msg("console only")
	assert.Contains(t, buf.String(), "console only")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "console only")

	assert.NoError(t, Close())
}

func TestGetLogFilePath(t *testing.T) {
	// Registered first so it runs after Setenv restores the variable.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	xdg.Reload()

	assert.Equal(t, filepath.Join("/custom/state", "filestate", "filestate.log"), getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "reconcile")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
}
