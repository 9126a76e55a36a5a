package libevents

import (
	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus.FieldLogger (a *logrus.Logger or *logrus.Entry)
// to Logger.
type logrusLogger struct {
	logrus.FieldLogger
}

// NewLogrusLogger wraps l so it can be passed to WithLogger.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLogger{FieldLogger: l}
}

func (l *logrusLogger) WithField(key string, value any) Logger {
	return &logrusLogger{FieldLogger: l.FieldLogger.WithField(key, value)}
}
