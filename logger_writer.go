package libevents

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type field struct {
	key   string
	value any
}

// writerLogger implements Logger on top of an io.Writer, one line per entry.
type writerLogger struct {
	writer io.Writer
	fields []field
}

// NewWriterLogger creates a new logger that writes to the provided writer
func NewWriterLogger(writer io.Writer) Logger {
	return &writerLogger{writer: writer}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	fields := make([]field, 0, len(l.fields)+1)
	fields = append(fields, l.fields...)
	fields = append(fields, field{key: key, value: value})
	return &writerLogger{writer: l.writer, fields: fields}
}

func (l *writerLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	parts := make([]string, len(l.fields))
	for i, f := range l.fields {
		parts[i] = fmt.Sprintf("%s=%v", f.key, f.value)
	}
	return " [" + strings.Join(parts, ", ") + "]"
}

func (l *writerLogger) log(level, msg string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(l.writer, "[%s] %s%s: %s\n", timestamp, level, l.formatFields(), strings.TrimRight(msg, "\n"))
}

func (l *writerLogger) Debug(args ...any) { l.log("DEBUG", fmt.Sprint(args...)) }

func (l *writerLogger) Debugf(format string, args ...any) {
	l.log("DEBUG", fmt.Sprintf(format, args...))
}

func (l *writerLogger) Debugln(args ...any) { l.log("DEBUG", fmt.Sprintln(args...)) }

func (l *writerLogger) Info(args ...any) { l.log("INFO", fmt.Sprint(args...)) }

func (l *writerLogger) Infof(format string, args ...any) {
	l.log("INFO", fmt.Sprintf(format, args...))
}

func (l *writerLogger) Infoln(args ...any) { l.log("INFO", fmt.Sprintln(args...)) }

func (l *writerLogger) Warn(args ...any) { l.log("WARN", fmt.Sprint(args...)) }

func (l *writerLogger) Warnf(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

func (l *writerLogger) Warnln(args ...any) { l.log("WARN", fmt.Sprintln(args...)) }

func (l *writerLogger) Error(args ...any) { l.log("ERROR", fmt.Sprint(args...)) }

func (l *writerLogger) Errorf(format string, args ...any) {
	l.log("ERROR", fmt.Sprintf(format, args...))
}

func (l *writerLogger) Errorln(args ...any) { l.log("ERROR", fmt.Sprintln(args...)) }
