// Package logging configures the process-wide logrus logger.
//
// Logs always go to stderr: stdout carries the MCP protocol stream.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init sets the global level and formatter and directs output to stderr.
//
// Parameters:
//   - level: A logrus level name such as "debug" or "info".
//   - format: "text" or "json".
func Init(level, format string) error {
	return InitWriter(os.Stderr, level, format)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    true,
			DisableColors:    true,
			QuoteEmptyFields: true,
		})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	logrus.SetOutput(w)
	logrus.SetLevel(lvl)
	return nil
}

// New returns an entry tagged with the component name.
func New(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}
