package types

// SecuritySnapshot is the parsed token-security oracle payload. Every field
// defaults to "not flagged": an absent upstream field never reads as risky.
// Numeric fields are nil when missing or unparseable.
type SecuritySnapshot struct {
	Honeypot             bool
	SourceUnverified     bool
	OwnershipRecoverable bool
	OwnerChangeBalance   bool
	HiddenOwner          bool
	SelfDestruct         bool
	Blacklist            bool
	Mintable             bool
	SellTax              *float64
	BuyTax               *float64
	HolderCount          *int
}

// MarketPair is the single highest-liquidity trading pair for the token.
type MarketPair struct {
	Name           string
	Symbol         string
	DexID          string
	PriceUSD       *float64
	LiquidityUSD   *float64
	Volume24h      *float64
	PriceChange24h *float64
	FDV            *float64
}

// OnChainSnapshot mirrors the analyzer service response field for field.
type OnChainSnapshot struct {
	ConcentratedWallets bool     `json:"concentrated_wallets"`
	Top10Pct            *float64 `json:"top10_pct"`
	LockedLiquidityPct  float64  `json:"locked_liquidity_pct"`
	SuspiciousPatterns  []string `json:"suspicious_patterns"`
}
