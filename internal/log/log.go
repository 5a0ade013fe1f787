// Package log provides structured logging for codehint.
// It wraps tea.LogToFile with structured fields (level, category, timestamp)
// and is only active once the command enables it via --debug or
// CODEHINT_DEBUG. Until then every call is a no-op, which keeps the
// terminal clean while the editor owns the screen.
package log

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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

// ParseLevel converts a level name to a Level. Unknown names map to LevelDebug.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelDebug
	}
}

// Category groups related log messages.
type Category string

const (
	CatHint      Category = "hint"      // Cursor context resolution and hint lookups
	CatKeywords  Category = "keywords"  // Keyword table loading and reloads
	CatHighlight Category = "highlight" // Highlight rule compilation and matching
	CatConfig    Category = "config"    // Configuration loading/saving
	CatWatcher   Category = "watcher"   // File watcher events
	CatUI        Category = "ui"        // UI component updates
	CatCache     Category = "cache"     // cache operations
)

// Logger writes one line per entry:
//
//	2025-12-06T10:45:00 [ERROR] [hint] message key=value key2=value2
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	enabled  bool
	minLevel Level
}

var defaultLogger *Logger

// InitWithTeaLog opens path through tea.LogToFile, so Bubble Tea's own
// messages land in the same file, and routes all logging there. The
// returned function closes the file.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	InitWriter(f, LevelDebug)
	return func() {
		Reset()
		_ = f.Close()
	}, nil
}

// InitWriter directs log output to w.
func InitWriter(w io.Writer, minLevel Level) {
	defaultLogger = &Logger{out: w, enabled: true, minLevel: minLevel}
}

// Reset drops the global logger. Logging becomes a no-op again.
func Reset() {
	defaultLogger = nil
}

func configure(fn func(l *Logger)) {
	l := defaultLogger
	if l == nil {
		return
	}
	l.mu.Lock()
	fn(l)
	l.mu.Unlock()
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	configure(func(l *Logger) { l.enabled = enabled })
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	configure(func(l *Logger) { l.minLevel = level })
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields)
}

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	value := "<nil>"
	if err != nil {
		value = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", value))
}

func write(level Level, cat Category, msg string, fields []any) {
	l := defaultLogger
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel || l.out == nil {
		return
	}
	_, _ = io.WriteString(l.out, format(time.Now(), level, cat, msg, fields))
}

func format(now time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", now.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 == len(fields) {
			fmt.Fprintf(&b, " %v=<missing>", fields[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	b.WriteByte('\n')
	return b.String()
}
