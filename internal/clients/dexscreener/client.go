package dexscreener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/types"
	"github.com/degenscope/scanner-backend/internal/utils"
)

// Client fetches trading pairs for a token and keeps only the one with the
// deepest USD liquidity.
type Client interface {
	TopPair(ctx context.Context, address string) (*types.MarketPair, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

type apiResponse struct {
	Pairs []pair `json:"pairs"`
}

type pair struct {
	DexID     string `json:"dexId"`
	PriceUSD  string `json:"priceUsd"`
	BaseToken struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"baseToken"`
	Liquidity struct {
		USD *float64 `json:"usd"`
	} `json:"liquidity"`
	Volume struct {
		H24 *float64 `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H24 *float64 `json:"h24"`
	} `json:"priceChange"`
	FDV *float64 `json:"fdv"`
}

func NewClient(log *logger.Logger) Client {
	baseURL := utils.GetEnv("DEXSCREENER_BASE_URL", "https://api.dexscreener.com", log)
	timeoutSec := utils.GetEnvAsInt("DEXSCREENER_TIMEOUT_SECONDS", 15, log)
	maxRetries := utils.GetEnvAsInt("DEXSCREENER_MAX_RETRIES", 0, log)

	return &client{
		log:        log.With("client", "DexScreenerClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}
}

// TopPair returns nil without error when the token has no listed pairs.
func (c *client) TopPair(ctx context.Context, address string) (*types.MarketPair, error) {
	url := fmt.Sprintf("%s/latest/dex/tokens/%s", c.baseURL, address)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode pairs response: %w", err)
	}
	if len(resp.Pairs) == 0 {
		return nil, nil
	}

	best := resp.Pairs[0]
	for _, p := range resp.Pairs[1:] {
		if liquidityUSD(p) > liquidityUSD(best) {
			best = p
		}
	}

	mp := &types.MarketPair{
		Name:           best.BaseToken.Name,
		Symbol:         best.BaseToken.Symbol,
		DexID:          best.DexID,
		LiquidityUSD:   best.Liquidity.USD,
		Volume24h:      best.Volume.H24,
		PriceChange24h: best.PriceChange.H24,
		FDV:            best.FDV,
	}
	if v, err := strconv.ParseFloat(best.PriceUSD, 64); err == nil {
		mp.PriceUSD = &v
	}
	return mp, nil
}

// liquidityUSD treats a missing liquidity value as zero for comparison.
func liquidityUSD(p pair) float64 {
	if p.Liquidity.USD == nil {
		return 0
	}
	return *p.Liquidity.USD
}

func (c *client) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			continue
		}
		return body, nil
	}
	return nil, lastErr
}
