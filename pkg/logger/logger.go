package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
)

type Logger struct {
	SlogLogger *slog.Logger
}

// NewLogger writes json lines to loggingFilePath, or to stdout when it is empty.
func NewLogger(loggingFilePath string) *Logger {
	if loggingFilePath == "" {
		return NewLoggerWithWriter(os.Stdout)
	}
	file, err := os.OpenFile(loggingFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(err)
	}
	return NewLoggerWithWriter(file)
}

func NewLoggerWithWriter(w io.Writer) *Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return &Logger{SlogLogger: logger}
}

func (l Logger) Info(msg string, args ...interface{}) {
	l.SlogLogger.Info(msg, args...)

}

func (l Logger) Warn(msg string, args ...interface{}) {
	l.SlogLogger.Warn(msg, args...)
}

func (l Logger) Error(msg string, args ...interface{}) {
	l.SlogLogger.Error(msg, args...)

}

func (l Logger) With(args ...any) domain.LoggingRepository {
	return &Logger{
		SlogLogger: l.SlogLogger.With(args...),
	}
}
