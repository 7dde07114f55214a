package logging

import "go.uber.org/zap"

const (
	envLocal = "local"
	envDev   = "dev"
)

func New(env string) (*zap.Logger, error) {
	switch env {
	case envLocal, envDev:
		return zap.NewDevelopment()
	default:
		return zap.NewProduction()
	}
}
