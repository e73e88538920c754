package app

import (
	"time"

	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/utils"
)

type Config struct {
	Port     string
	CacheTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8000", log)
	cacheTTLSeconds := utils.GetEnvAsInt("ANALYSIS_CACHE_TTL", 86400, log)
	return Config{
		Port:     port,
		CacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}
