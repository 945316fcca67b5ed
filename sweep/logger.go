package sweep

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger replaces the sweep driver's logger, used to surface the
// "later binding overrides an earlier one" warning of §4.7's merge rule.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
