package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts zerolog to the port.Logger diagnostics sink.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a stderr logger at the given level. Unknown or empty levels
// fall back to info.
func New(level string) *ZeroLogger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(level string, w io.Writer) *ZeroLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return &ZeroLogger{
		log: zerolog.New(w).With().Timestamp().Logger().Level(lvl),
	}
}

func (l *ZeroLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZeroLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

// Nop discards all diagnostics.
type Nop struct{}

func (Nop) Infof(string, ...any)  {}
func (Nop) Errorf(string, ...any) {}
