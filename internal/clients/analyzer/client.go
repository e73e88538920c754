package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/degenscope/scanner-backend/internal/logger"
	"github.com/degenscope/scanner-backend/internal/types"
	"github.com/degenscope/scanner-backend/internal/utils"
)

// Client calls the on-chain holder-concentration analyzer service.
type Client interface {
	Analyze(ctx context.Context, address, chain string) (*types.OnChainSnapshot, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

type analyzeRequest struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

func NewClient(log *logger.Logger) Client {
	baseURL := utils.GetEnv("ANALYZER_URL", "http://analyzer:8001", log)
	timeoutSec := utils.GetEnvAsInt("ANALYZER_TIMEOUT_SECONDS", 15, log)
	maxRetries := utils.GetEnvAsInt("ANALYZER_MAX_RETRIES", 0, log)

	return &client{
		log:        log.With("client", "AnalyzerClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}
}

func (c *client) Analyze(ctx context.Context, address, chain string) (*types.OnChainSnapshot, error) {
	payload, err := json.Marshal(analyzeRequest{Address: address, Chain: chain})
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

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

		var snap types.OnChainSnapshot
		if err := json.Unmarshal(body, &snap); err != nil {
			lastErr = fmt.Errorf("decode analyzer response: %w", err)
			continue
		}
		return &snap, nil
	}
	return nil, lastErr
}
