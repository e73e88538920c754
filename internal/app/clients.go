package app

import (
	"fmt"

	"github.com/degenscope/scanner-backend/internal/clients/analyzer"
	"github.com/degenscope/scanner-backend/internal/clients/dexscreener"
	"github.com/degenscope/scanner-backend/internal/clients/goplus"
	"github.com/degenscope/scanner-backend/internal/clients/rediscache"
	"github.com/degenscope/scanner-backend/internal/logger"
)

type Clients struct {
	Cache    rediscache.Cache
	Security goplus.Client
	Market   dexscreener.Client
	OnChain  analyzer.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	cache, err := rediscache.NewCache(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis cache: %w", err)
	}

	return Clients{
		Cache:    cache,
		Security: goplus.NewClient(log),
		Market:   dexscreener.NewClient(log),
		OnChain:  analyzer.NewClient(log),
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
}
