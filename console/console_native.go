//go:build !js && !wasm

package console

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Native builds have no browser console; messages go to a logrus logger
// writing to stderr so stdout stays free for rendered output.
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Logger returns the logger backing the console on native builds.
func Logger() *logrus.Logger {
	return logger
}

// SetOutput redirects console output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel parses and applies a logrus level name such as "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "console level")
	}
	logger.SetLevel(lvl)
	return nil
}

// Log writes an info message.
func Log(args ...any) {
	logger.Infoln(args...)
}

// Warn writes a warning.
func Warn(args ...any) {
	logger.Warnln(args...)
}

// Error writes an error.
func Error(args ...any) {
	logger.Errorln(args...)
}
