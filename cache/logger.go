package cache

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

// SetLogger replaces the cache's logger, used to surface the "factorize
// failed, no fallback" warning once per sparsity pattern (§7 NumericError).
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
