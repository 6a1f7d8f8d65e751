package app

import (
	"os"

	"service-food-delivery/internal/config"
	"service-food-delivery/internal/logx"
)

// NewLogger builds the JSON logger at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel)
}
