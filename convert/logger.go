package convert

import (
	"io"

	"github.com/sirupsen/logrus"
)

// log is package-local and discards output by default so importing
// convert as a library dependency never writes to stderr unexpectedly.
// Call SetLogger to wire it into an application's logging setup.
var log = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger replaces convert's logger, e.g. with the application's
// shared *logrus.Logger, to surface regularization warnings (§4.9).
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
