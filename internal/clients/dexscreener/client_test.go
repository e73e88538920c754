package dexscreener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/degenscope/scanner-backend/internal/logger"
)

const testAddress = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("DEXSCREENER_BASE_URL", srv.URL)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewClient(log)
}

func TestTopPairPicksMaxLiquidity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/latest/dex/tokens/"+testAddress {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"pairs": [
			{"dexId": "small", "baseToken": {"name": "A", "symbol": "A"}, "liquidity": {"usd": 1000}},
			{"dexId": "big", "priceUsd": "2.5", "baseToken": {"name": "Big Pool", "symbol": "BIG"}, "liquidity": {"usd": 90000}, "volume": {"h24": 500}, "priceChange": {"h24": -1.5}, "fdv": 123456},
			{"dexId": "noliq", "baseToken": {"name": "B", "symbol": "B"}}
		]}`))
	})

	pair, err := c.TopPair(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("TopPair: %v", err)
	}
	if pair == nil {
		t.Fatal("expected a pair")
	}
	if pair.DexID != "big" || pair.Name != "Big Pool" || pair.Symbol != "BIG" {
		t.Errorf("did not select the highest-liquidity pair: %+v", pair)
	}
	if pair.PriceUSD == nil || *pair.PriceUSD != 2.5 {
		t.Errorf("PriceUSD = %v, want 2.5", pair.PriceUSD)
	}
	if pair.LiquidityUSD == nil || *pair.LiquidityUSD != 90000 {
		t.Errorf("LiquidityUSD = %v, want 90000", pair.LiquidityUSD)
	}
	if pair.FDV == nil || *pair.FDV != 123456 {
		t.Errorf("FDV = %v, want 123456", pair.FDV)
	}
}

func TestTopPairMissingLiquidityComparesAsZero(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": [
			{"dexId": "noliq", "baseToken": {"name": "A", "symbol": "A"}},
			{"dexId": "tiny", "baseToken": {"name": "B", "symbol": "B"}, "liquidity": {"usd": 1}}
		]}`))
	})

	pair, err := c.TopPair(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("TopPair: %v", err)
	}
	if pair == nil || pair.DexID != "tiny" {
		t.Errorf("expected the pair with any liquidity to win, got %+v", pair)
	}
}

func TestTopPairNoPairs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": []}`))
	})

	pair, err := c.TopPair(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("TopPair: %v", err)
	}
	if pair != nil {
		t.Errorf("expected nil pair for an unlisted token, got %+v", pair)
	}
}

func TestTopPairBadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	if _, err := c.TopPair(context.Background(), testAddress); err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
}
