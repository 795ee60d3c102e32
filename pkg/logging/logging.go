package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls where log output goes. The zero value logs warnings to
// stderr and to the default log file.
type Options struct {
	Verbosity int
	// Console receives human readable output. Defaults to os.Stderr; stdout
	// is reserved for command results.
	Console io.Writer
	// LogFile overrides the default log file path.
	LogFile string
	// DisableFile turns off file logging entirely.
	DisableFile bool
	NoColor     bool
}

var (
	fileMu sync.Mutex
	// openFile is the log file the global logger currently writes to.
	openFile *os.File
	consoleW zerolog.ConsoleWriter
)

// SetupLogger configures the global logger based on verbosity level
// It sets up dual output to both console and a log file
func SetupLogger(verbosity int) {
	SetupLoggerWithOptions(Options{Verbosity: verbosity})
}

// SetupLoggerWithOptions configures the global logger from opts.
func SetupLoggerWithOptions(opts Options) {
	zerolog.SetGlobalLevel(levelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	cw := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}
	writers := []io.Writer{cw}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = getLogFilePath()
	}

	fileMu.Lock()
	defer fileMu.Unlock()
	_ = closeOpenFile()
	consoleW = cw

	var fileErr error
	if !opts.DisableFile {
		var handle *os.File
		handle, fileErr = setupLogFile(logFile)
		if fileErr == nil {
			openFile = handle
			writers = append(writers, handle)
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// Close detaches the log file from the global logger and closes it. Console
// output keeps working.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()
	if openFile == nil {
		return nil
	}
	log.Logger = log.Logger.Output(consoleW)
	return closeOpenFile()
}

func closeOpenFile() error {
	if openFile == nil {
		return nil
	}
	err := openFile.Close()
	openFile = nil
	return err
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// getLogFilePath returns the path to the log file under the XDG state home
// (~/.local/state/filestate/ by default).
func getLogFilePath() string {
	return filepath.Join(xdg.StateHome, "filestate", "filestate.log")
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
