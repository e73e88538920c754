package goplus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/degenscope/scanner-backend/internal/logger"
)

const testAddress = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("GOPLUS_BASE_URL", srv.URL)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewClient(log)
}

func TestTokenSecurityParsesReport(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/token_security/1" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("contract_addresses"); got != testAddress {
			t.Errorf("contract_addresses = %q", got)
		}
		w.Write([]byte(`{
			"code": 1,
			"result": {
				"` + testAddress + `": {
					"is_honeypot": "1",
					"is_open_source": "0",
					"hidden_owner": "1",
					"sell_tax": "0.12",
					"buy_tax": "abc",
					"holder_count": "57"
				}
			}
		}`))
	})

	snap, err := c.TokenSecurity(context.Background(), "1", testAddress)
	if err != nil {
		t.Fatalf("TokenSecurity: %v", err)
	}
	if !snap.Honeypot || !snap.SourceUnverified || !snap.HiddenOwner {
		t.Errorf("boolean flags not parsed: %+v", snap)
	}
	if snap.OwnershipRecoverable || snap.Mintable || snap.Blacklist {
		t.Errorf("absent fields must stay benign: %+v", snap)
	}
	if snap.SellTax == nil || *snap.SellTax != 0.12 {
		t.Errorf("SellTax = %v, want 0.12", snap.SellTax)
	}
	if snap.BuyTax != nil {
		t.Errorf("unparseable buy tax must be nil, got %v", *snap.BuyTax)
	}
	if snap.HolderCount == nil || *snap.HolderCount != 57 {
		t.Errorf("HolderCount = %v, want 57", snap.HolderCount)
	}
}

func TestTokenSecurityEmptyReportIsBenign(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 1, "result": {"` + testAddress + `": {}}}`))
	})

	snap, err := c.TokenSecurity(context.Background(), "1", testAddress)
	if err != nil {
		t.Fatalf("TokenSecurity: %v", err)
	}
	if snap.Honeypot || snap.SourceUnverified || snap.SellTax != nil || snap.HolderCount != nil {
		t.Errorf("empty report must parse to a benign snapshot: %+v", snap)
	}
}

func TestTokenSecurityAPIErrorCode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 4029, "message": "rate limited"}`))
	})
	if _, err := c.TokenSecurity(context.Background(), "1", testAddress); err == nil {
		t.Fatal("expected an error for a non-ok api code")
	}
}

func TestTokenSecurityBadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	if _, err := c.TokenSecurity(context.Background(), "1", testAddress); err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
}

func TestTokenSecurityMalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	if _, err := c.TokenSecurity(context.Background(), "1", testAddress); err == nil {
		t.Fatal("expected an error for a malformed payload")
	}
}
