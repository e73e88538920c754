package app

import (
	"github.com/degenscope/scanner-backend/internal/handlers"
	"github.com/degenscope/scanner-backend/internal/logger"
)

type Handlers struct {
	Analysis *handlers.AnalysisHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Analysis: handlers.NewAnalysisHandler(log, serviceset.Analysis),
	}
}
