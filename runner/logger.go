package runner

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tvolkar/flightslt/models"
)

var _ models.Logger = (*Logger)(nil)

// Logger writes leveled messages to a single sink.
type Logger struct {
	logger *log.Logger
}

// NewLogger returns a logger writing to out, or to stderr when out is
// nil.
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		logger: log.New(out, "", log.Ldate|log.Ltime),
	}
}

func (l *Logger) log(level, message string) {
	l.logger.Printf("[%s]: %s", level, message)
}

func (l *Logger) Debug(msg string) {
	l.log("debug", msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.log("debug", fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string) {
	l.log("info", msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.log("info", fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.log("warn", msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log("warn", fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.log("error", msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log("error", fmt.Sprintf(format, args...))
}
