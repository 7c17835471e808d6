package logger

import (
	"os"

	"medvisit-client/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is the plain-text bootstrap logger used before the zap
// logger is up, and by code paths that only need leveled text output.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	switch internalConfig.App.Env {
	case "production":
		logger.SetFormatter(&logrus.JSONFormatter{})
		file, err := os.OpenFile(internalConfig.Logger.OutputFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logger.SetOutput(file)
		} else {
			logger.Info("Failed to log to file, using default stderr")
		}
	default:
		logger.SetFormatter(&logrus.TextFormatter{})
		logger.SetOutput(os.Stderr)
	}
	return logger
}
