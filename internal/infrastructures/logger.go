package infrastructures

import (
	"github.com/sirupsen/logrus"
)

// ConfigureLogger sets up the standard logrus logger used across the service
func ConfigureLogger(config *AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(config.LOG_LEVEL)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", config.LOG_LEVEL)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
