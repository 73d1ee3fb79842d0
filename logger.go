package qrstyle

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the active logger, swapped atomically by SetLogger.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by qrstyle. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Debug: render geometry (grid size, scale, final width)
//   - Warn: unknown point style or eye shape replaced by the default
//
// Example:
//
//	l := logrus.New()
//	l.SetLevel(logrus.DebugLevel)
//	qrstyle.SetLogger(l)
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}

func logger() *logrus.Entry {
	return Logger().WithField("component", "qrstyle")
}
