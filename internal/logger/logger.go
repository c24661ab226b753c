// Package logger is the structured logger shared by the CLI, the definitions
// loader and the web gallery.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats accepted by Options.Format.
const (
	FormatAuto    = "auto"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level string
	// Format is one of FormatAuto, FormatJSON or FormatConsole. Auto picks
	// console output when Writer is a terminal.
	Format string
	Writer io.Writer
}

// Logger wraps zerolog with the small API the application needs. A nil
// *Logger discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts. The default writer is stderr so command
// output on stdout stays machine readable.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	human, err := humanReadable(opts.Format, writer)
	if err != nil {
		return nil, err
	}

	output := writer
	if human {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.Kitchen
		console.NoColor = !IsTerminal(writer)
		output = console
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func humanReadable(format string, w io.Writer) (bool, error) {
	switch strings.ToLower(format) {
	case "", FormatAuto:
		return IsTerminal(w), nil
	case FormatJSON:
		return false, nil
	case FormatConsole:
		return true, nil
	default:
		return false, fmt.Errorf("unknown log format %q", format)
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// With returns a derived logger that always writes key=value.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level string) bool {
	if l == nil {
		return false
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return false
	}
	return parsed >= l.base.GetLevel()
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
