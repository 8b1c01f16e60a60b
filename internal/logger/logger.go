package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger used across services.
func Setup(service, level, format string) *logrus.Entry {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logrus.WithField("service", service)
}
