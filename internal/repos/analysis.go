package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/types"
)

type AnalysisRepo interface {
	Create(ctx context.Context, tx *gorm.DB, analysis *types.Analysis) (*types.Analysis, error)
	Recent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.AnalysisSummary, error)
}

type analysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) AnalysisRepo {
	repoLog := baseLog.With("repo", "AnalysisRepo")
	return &analysisRepo{db: db, log: repoLog}
}

func (ar *analysisRepo) Create(ctx context.Context, tx *gorm.DB, analysis *types.Analysis) (*types.Analysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	if analysis == nil {
		return nil, nil
	}

	if err := transaction.WithContext(ctx).Create(analysis).Error; err != nil {
		return nil, err
	}

	return analysis, nil
}

func (ar *analysisRepo) Recent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.AnalysisSummary, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var results []*types.AnalysisSummary

	if err := transaction.WithContext(ctx).
		Model(&types.Analysis{}).
		Select("contract_address", "chain", "risk_score", "risk_level", "contract_name", "symbol", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
