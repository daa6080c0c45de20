// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Setup configures the shared logger. Production uses JSON output.
func Setup(level string, production bool) *logrus.Logger {
	log.SetOutput(os.Stdout)
	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// L returns the shared logger.
func L() *logrus.Logger {
	return log
}

// SetOutput redirects the shared logger, mainly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Writer returns a writer that logs each line at info level.
func Writer() *io.PipeWriter {
	return log.WriterLevel(logrus.InfoLevel)
}
