package utils

import (
	"os"

	"go.uber.org/zap"
)

const loggerName = "beautyqueue"

// NewLogger creates the application logger. Production encoding is used when ENVIRONMENT is prod.
func NewLogger() (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("ENVIRONMENT") == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return logger.Named(loggerName), nil
}
