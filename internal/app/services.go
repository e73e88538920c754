package app

import (
	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/services"
)

type Services struct {
	Analysis services.AnalysisService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Analysis: services.NewAnalysisService(
			log,
			clients.Cache,
			reposet.Analysis,
			clients.Security,
			clients.Market,
			clients.OnChain,
			cfg.CacheTTL,
		),
	}
}
