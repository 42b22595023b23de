// Package logger holds the process-wide loggers used by the index, the
// dictionary loader and the document parsers. Both loggers discard output
// until the command line turns verbosity on.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// StdLogger is satisfied by *log.Logger.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

var (
	// Logger receives progress messages.
	Logger StdLogger = log.New(io.Discard, "[wordsearch] ", log.LstdFlags)

	// DebugLogger receives per-word and per-file detail. It forwards to
	// Logger unless replaced.
	DebugLogger StdLogger = &debugLogger{}
)

type debugLogger struct{}

func (d *debugLogger) Print(v ...interface{})                 { Logger.Print(v...) }
func (d *debugLogger) Printf(format string, v ...interface{}) { Logger.Printf(format, v...) }
func (d *debugLogger) Println(v ...interface{})               { Logger.Println(v...) }

// SetLogger replaces Logger.
func SetLogger(l StdLogger) {
	Logger = l
}

// SetDebugLogger replaces DebugLogger.
func SetDebugLogger(l StdLogger) {
	DebugLogger = l
}

// Discard returns a StdLogger that drops everything.
func Discard() StdLogger {
	return log.New(io.Discard, "", 0)
}

// zeroLogger writes every call as one zerolog event at a fixed level.
type zeroLogger struct {
	l     zerolog.Logger
	level zerolog.Level
}

// NewZerolog returns a StdLogger writing to w at the given level. Writes to
// a terminal stream are rendered by zerolog's console writer.
func NewZerolog(w io.Writer, level zerolog.Level) StdLogger {
	if f, ok := w.(*os.File); ok && (f == os.Stdout || f == os.Stderr) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: "15:04:05"}
	}
	return &zeroLogger{
		l:     zerolog.New(w).With().Timestamp().Logger(),
		level: level,
	}
}

func (z *zeroLogger) Print(v ...interface{}) {
	z.l.WithLevel(z.level).Msg(fmt.Sprint(v...))
}

func (z *zeroLogger) Printf(format string, v ...interface{}) {
	z.l.WithLevel(z.level).Msgf(format, v...)
}

func (z *zeroLogger) Println(v ...interface{}) {
	z.l.WithLevel(z.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// ParseLevel maps a config string such as "debug" or "info" to a zerolog
// level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
