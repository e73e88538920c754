package app

import (
	"github.com/gin-gonic/gin"

	"github.com/degenscope/scanner-backend/internal/server"
)

func wireRouter(handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AnalysisHandler: handlerset.Analysis,
	})
}
