package httpsvc

import (
	"fmt"
	"io"

	"golang.org/x/exp/slog"
)

// Logger is the optional logging hook. The encode/decode pipeline itself
// never logs; only the client facade reports transport faults through it.
type Logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

// SlogLogger adapts a slog.Logger to the Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger writing text records to output at the
// given level.
func NewSlogLogger(output io.Writer, level slog.Level) *SlogLogger {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})
	return &SlogLogger{logger: slog.New(handler)}
}

// Debugf logs a message at the Debug level.
func (l *SlogLogger) Debugf(format string, v ...any) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

// Errorf logs a message at the Error level.
func (l *SlogLogger) Errorf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
