package config

import (
	"go.uber.org/zap"
)

func NewLogger() (*zap.Logger, error) {
	if getEnv("APP_ENV", "production") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
