package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"github.com/degenscope/scanner-backend/internal/clients/analyzer"
	"github.com/degenscope/scanner-backend/internal/clients/dexscreener"
	"github.com/degenscope/scanner-backend/internal/clients/goplus"
	"github.com/degenscope/scanner-backend/internal/clients/rediscache"
	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/repos"
	"github.com/degenscope/scanner-backend/internal/types"
)

type AnalysisService interface {
	Analyze(ctx context.Context, address, chain string) (*types.AnalysisResult, error)
	History(ctx context.Context, limit int) ([]*types.AnalysisSummary, error)
}

type analysisService struct {
	log      *logger.Logger
	cache    rediscache.Cache
	repo     repos.AnalysisRepo
	security goplus.Client
	market   dexscreener.Client
	onchain  analyzer.Client
	cacheTTL time.Duration
	flight   singleflight.Group
}

func NewAnalysisService(
	baseLog *logger.Logger,
	cache rediscache.Cache,
	analysisRepo repos.AnalysisRepo,
	security goplus.Client,
	market dexscreener.Client,
	onchain analyzer.Client,
	cacheTTL time.Duration,
) AnalysisService {
	serviceLog := baseLog.With("service", "AnalysisService")
	return &analysisService{
		log:      serviceLog,
		cache:    cache,
		repo:     analysisRepo,
		security: security,
		market:   market,
		onchain:  onchain,
		cacheTTL: cacheTTL,
	}
}

// Analyze runs the cache-aside pipeline for one (chain, address) key. The
// cache is consulted before any provider is contacted; a read failure counts
// as a miss. Concurrent callers for the same uncached key share one fetch
// round instead of each fanning out to the providers.
func (s *analysisService) Analyze(ctx context.Context, address, chain string) (*types.AnalysisResult, error) {
	key := fmt.Sprintf("analysis:%s:%s", chain, address)

	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn("Cache read failed, treating as miss", "key", key, "error", err)
	} else if hit {
		var cached types.AnalysisResult
		if uerr := json.Unmarshal(raw, &cached); uerr == nil {
			return &cached, nil
		} else {
			s.log.Warn("Corrupt cache entry, recomputing", "key", key, "error", uerr)
		}
	}

	// The shared computation must outlive the caller that happened to start
	// it: a disconnect would otherwise abort the fetches every joined caller
	// is waiting on and cache a degraded result.
	v, err, _ := s.flight.Do(key, func() (interface{}, error) {
		return s.runAnalysis(context.WithoutCancel(ctx), key, address, chain)
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.AnalysisResult), nil
}

// runAnalysis fans out to the three providers, scores whatever came back,
// writes the cache entry, and hands the record to the persistence sink.
func (s *analysisService) runAnalysis(ctx context.Context, key, address, chain string) (*types.AnalysisResult, error) {
	chainID := types.ChainID(chain)

	var (
		sec     *types.SecuritySnapshot
		pair    *types.MarketPair
		onchain *types.OnChainSnapshot
	)

	// Each fetch is fault-isolated: a provider failure degrades its snapshot
	// to nil and never aborts the others.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap, err := s.security.TokenSecurity(gctx, chainID, address)
		if err != nil {
			s.log.Warn("Security fetch failed", "address", address, "error", err)
			return nil
		}
		sec = snap
		return nil
	})
	g.Go(func() error {
		p, err := s.market.TopPair(gctx, address)
		if err != nil {
			s.log.Warn("Market fetch failed", "address", address, "error", err)
			return nil
		}
		pair = p
		return nil
	})
	g.Go(func() error {
		snap, err := s.onchain.Analyze(gctx, address, chain)
		if err != nil {
			s.log.Warn("On-chain fetch failed", "address", address, "error", err)
			return nil
		}
		onchain = snap
		return nil
	})
	_ = g.Wait()

	assessment := ScoreToken(sec, pair, onchain)
	result := assembleResult(address, chain, assessment, pair, onchain)

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("serialize analysis result: %w", err)
	}

	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn("Cache write failed", "key", key, "error", err)
	}

	go s.persist(result, raw)

	return result, nil
}

// assembleResult merges the snapshots and assessment into the externally
// visible record, applying display defaults when no pair was found.
func assembleResult(address, chain string, assessment types.RiskAssessment, pair *types.MarketPair, onchain *types.OnChainSnapshot) *types.AnalysisResult {
	result := &types.AnalysisResult{
		ContractAddress: address,
		Chain:           chain,
		RiskScore:       assessment.Score,
		RiskLevel:       assessment.Level,
		ContractName:    "Unknown",
		Symbol:          "???",
		Flags:           assessment.Flags,
		Details: types.AnalysisDetails{
			OnChain: onchain,
		},
		AnalyzedAt: time.Now().UTC(),
	}
	if pair != nil {
		if pair.Name != "" {
			result.ContractName = pair.Name
		}
		if pair.Symbol != "" {
			result.Symbol = pair.Symbol
		}
		result.PriceUSD = pair.PriceUSD
		result.LiquidityUSD = pair.LiquidityUSD
		result.Volume24h = pair.Volume24h
		if pair.DexID != "" {
			dexID := pair.DexID
			result.Details.MarketData.DexID = &dexID
		}
		result.Details.MarketData.PriceChange24h = pair.PriceChange24h
		result.Details.MarketData.FDV = pair.FDV
	}
	return result
}

// persist is fire-and-forget: one insert per completed analysis, any failure
// logged and discarded, never observable to the caller.
func (s *analysisService) persist(result *types.AnalysisResult, raw []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := &types.Analysis{
		ID:              uuid.New(),
		ContractAddress: result.ContractAddress,
		Chain:           result.Chain,
		RiskScore:       result.RiskScore,
		RiskLevel:       result.RiskLevel,
		ContractName:    result.ContractName,
		Symbol:          result.Symbol,
		AnalysisData:    datatypes.JSON(raw),
		CreatedAt:       result.AnalyzedAt,
	}
	if _, err := s.repo.Create(ctx, nil, record); err != nil {
		s.log.Warn("Analysis insert failed", "address", result.ContractAddress, "chain", result.Chain, "error", err)
	}
}

func (s *analysisService) History(ctx context.Context, limit int) ([]*types.AnalysisSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Recent(ctx, nil, limit)
}
