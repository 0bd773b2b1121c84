// Package log configures the process-wide logrus logger and offers
// key/value helpers used by the generator and the CLI.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000"

// SetLogger sets the level and output format of the standard logger.
// Generator output goes to files or stdout, so logs go to stderr.
func SetLogger(level logrus.Level, jsonFormat, colorFormat bool) {
	SetOutput(os.Stderr)
	logrus.SetLevel(level)

	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})

		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:      colorFormat,
		DisableColors:    !colorFormat,
		FullTimestamp:    true,
		TimestampFormat:  timestampFormat,
		DisableSorting:   true,
		DisableQuote:     false,
		QuoteEmptyFields: true,
	})
}

// SetOutput redirects the standard logger.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// ParseLevel parses a level name such as "debug" or "warn".
func ParseLevel(name string) (logrus.Level, error) {
	return logrus.ParseLevel(name)
}

// WithFields builds an entry from alternating keys and values.
func WithFields(ctx ...any) *logrus.Entry {
	length := len(ctx)
	if length%2 != 0 {
		logrus.Debugf("log fields number %v is not even", length)
	}

	fields := make(logrus.Fields)

	for k := 0; k+2 <= length; k += 2 {
		key, ok := ctx[k].(string)
		if ok {
			fields[key] = ctx[k+1]
		} else {
			logrus.Debugf("log field key '%v' is not string", ctx[k])
		}
	}

	return logrus.WithFields(fields)
}

func Debug(msg string, ctx ...any) {
	WithFields(ctx...).Debug(msg)
}

func Info(msg string, ctx ...any) {
	WithFields(ctx...).Info(msg)
}

func Warn(msg string, ctx ...any) {
	WithFields(ctx...).Warn(msg)
}

func Error(msg string, ctx ...any) {
	WithFields(ctx...).Error(msg)
}
