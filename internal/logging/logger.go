package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a LOG_LEVEL value to a Level; unknown values fall back to info.
func ParseLevel(s string) Level {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return LevelInfo
}

// Logger is a leveled wrapper around the standard logger. Safe for concurrent use.
type Logger struct {
	base  *log.Logger
	level int32
}

// Output returns stderr, teed into the file at path (appended) when path is set.
func Output(path string) (io.Writer, error) {
	if path == "" {
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return io.MultiWriter(os.Stderr, f), nil
}

func New(out io.Writer, level Level) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		base:  log.New(out, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		level: int32(level),
	}
}

func (l *Logger) SetLevel(level Level) { atomic.StoreInt32(&l.level, int32(level)) }

func (l *Logger) Level() Level { return Level(atomic.LoadInt32(&l.level)) }

func (l *Logger) logf(level Level, format string, args ...any) {
	if l.Level() > level {
		return
	}
	// Plain messages may contain literal '%' (request paths), so only format with args.
	if len(args) == 0 {
		l.base.Printf("[%s] %s", level, format)
		return
	}
	l.base.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, a ...any) { l.logf(LevelDebug, format, a...) }
func (l *Logger) Infof(format string, a ...any)  { l.logf(LevelInfo, format, a...) }
func (l *Logger) Warnf(format string, a ...any)  { l.logf(LevelWarn, format, a...) }
func (l *Logger) Errorf(format string, a ...any) { l.logf(LevelError, format, a...) }

// Fatalf logs at error level regardless of threshold and exits.
func (l *Logger) Fatalf(format string, a ...any) {
	l.base.Printf("[%s] %s", LevelError, fmt.Sprintf(format, a...))
	os.Exit(1)
}

// Print lets the logger act as chi's request-log sink; access lines are info level.
func (l *Logger) Print(v ...any) {
	if l.Level() > LevelInfo {
		return
	}
	l.base.Printf("[%s] %s", LevelInfo, strings.TrimRight(fmt.Sprint(v...), "\n"))
}
