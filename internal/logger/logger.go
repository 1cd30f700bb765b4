// Package logger builds the service's named zap logger.
package logger

import "go.uber.org/zap"

// NewNamed creates a named logger configured for the given app environment:
// human-readable output in development, JSON in anything else.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var cfg zap.Config
	if appEnv == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
