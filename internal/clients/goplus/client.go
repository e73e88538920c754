package goplus

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

// Client fetches the token-security report for one contract address.
type Client interface {
	TokenSecurity(ctx context.Context, chainID, address string) (*types.SecuritySnapshot, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

// apiResponse is the oracle's wire shape: everything is a string, "1"/"0"
// for booleans, and any field may be absent.
type apiResponse struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Result  map[string]tokenReport `json:"result"`
}

type tokenReport struct {
	IsHoneypot           string `json:"is_honeypot"`
	IsOpenSource         string `json:"is_open_source"`
	CanTakeBackOwnership string `json:"can_take_back_ownership"`
	OwnerChangeBalance   string `json:"owner_change_balance"`
	HiddenOwner          string `json:"hidden_owner"`
	SelfDestruct         string `json:"selfdestruct"`
	IsBlacklisted        string `json:"is_blacklisted"`
	IsMintable           string `json:"is_mintable"`
	SellTax              string `json:"sell_tax"`
	BuyTax               string `json:"buy_tax"`
	HolderCount          string `json:"holder_count"`
}

func NewClient(log *logger.Logger) Client {
	baseURL := utils.GetEnv("GOPLUS_BASE_URL", "https://api.gopluslabs.io", log)
	timeoutSec := utils.GetEnvAsInt("GOPLUS_TIMEOUT_SECONDS", 15, log)
	maxRetries := utils.GetEnvAsInt("GOPLUS_MAX_RETRIES", 0, log)

	return &client{
		log:        log.With("client", "GoPlusClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}
}

func (c *client) TokenSecurity(ctx context.Context, chainID, address string) (*types.SecuritySnapshot, error) {
	url := fmt.Sprintf("%s/api/v1/token_security/%s?contract_addresses=%s", c.baseURL, chainID, address)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode token security response: %w", err)
	}
	if resp.Code != 1 {
		return nil, fmt.Errorf("token security api error: %s", resp.Message)
	}
	report, ok := resp.Result[address]
	if !ok {
		return nil, fmt.Errorf("no security data for %s", address)
	}

	return parseReport(report), nil
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

func parseReport(r tokenReport) *types.SecuritySnapshot {
	snap := &types.SecuritySnapshot{
		Honeypot:             r.IsHoneypot == "1",
		SourceUnverified:     r.IsOpenSource == "0",
		OwnershipRecoverable: r.CanTakeBackOwnership == "1",
		OwnerChangeBalance:   r.OwnerChangeBalance == "1",
		HiddenOwner:          r.HiddenOwner == "1",
		SelfDestruct:         r.SelfDestruct == "1",
		Blacklist:            r.IsBlacklisted == "1",
		Mintable:             r.IsMintable == "1",
	}
	if v, err := strconv.ParseFloat(r.SellTax, 64); err == nil {
		snap.SellTax = &v
	}
	if v, err := strconv.ParseFloat(r.BuyTax, 64); err == nil {
		snap.BuyTax = &v
	}
	if v, err := strconv.Atoi(r.HolderCount); err == nil {
		snap.HolderCount = &v
	}
	return snap
}
