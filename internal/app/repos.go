package app

import (
	"gorm.io/gorm"

	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/repos"
)

type Repos struct {
	Analysis repos.AnalysisRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Analysis: repos.NewAnalysisRepo(db, log),
	}
}
