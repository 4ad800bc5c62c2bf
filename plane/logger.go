package plane

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with queries from any goroutine.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newSilentLogger())
}

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger configures the logger for the package. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Levels used:
//   - Warn: polygons too small to have an inside
//   - Debug: ordering summaries
//   - Trace: every step of the membership edge walk
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	loggerPtr.Store(l)
}

func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
