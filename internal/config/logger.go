package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger applies level and format to the standard logrus logger.
// An unknown level falls back to info.
func (l Log) SetupLogger() {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", l.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)

	if l.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
