// Package log provides functionality for logging commands and errors
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const permission = 0644

// Fields carries structured context for a log entry.
type Fields map[string]interface{}

// Logger writes menu commands to a command log and recovered errors to an error log.
// Info entries go to the command log as well, at debug level.
type Logger struct {
	command zerolog.Logger
	errors  zerolog.Logger
	files   []*os.File
}

// NewLogger opens (or creates) the command and error log files inside logFolder.
func NewLogger(logFolder, commandLogName, errorLogName string, infoEnabled bool) (*Logger, error) {
	if err := os.MkdirAll(logFolder, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	commandFile, err := os.OpenFile(filepath.Join(logFolder, commandLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}

	errorFile, err := os.OpenFile(filepath.Join(logFolder, errorLogName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
	if err != nil {
		commandFile.Close()
		return nil, fmt.Errorf("failed to open error log file: %w", err)
	}

	l := New(zerolog.SyncWriter(commandFile), zerolog.SyncWriter(errorFile), infoEnabled)
	l.files = []*os.File{commandFile, errorFile}
	return l, nil
}

// New builds a Logger over arbitrary writers.
func New(commandW, errorW io.Writer, infoEnabled bool) *Logger {
	level := zerolog.InfoLevel
	if infoEnabled {
		level = zerolog.DebugLevel
	}
	return &Logger{
		command: zerolog.New(commandW).Level(level).With().Timestamp().Logger(),
		errors:  zerolog.New(errorW).With().Timestamp().Logger(),
	}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{
		command: zerolog.Nop(),
		errors:  zerolog.Nop(),
	}
}

func (l *Logger) LogCommand(command string, fields Fields) {
	l.command.Info().Fields(map[string]interface{}(fields)).Str("command", command).Send()
}

func (l *Logger) LogError(err error, fields Fields) {
	if err == nil {
		return
	}
	l.errors.Error().Fields(map[string]interface{}(fields)).Err(err).Send()
}

func (l *Logger) Info(message string, fields Fields) {
	l.command.Debug().Fields(map[string]interface{}(fields)).Msg(message)
}

// Close closes the underlying log files, if any.
func (l *Logger) Close() error {
	var errs []error
	for _, f := range l.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file %s: %w", f.Name(), err))
		}
	}
	l.files = nil
	return errors.Join(errs...)
}
