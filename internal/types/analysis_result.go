package types

import "time"

const (
	RiskLevelSafe     = "SAFE"
	RiskLevelModerate = "MODERATE"
	RiskLevelRisky    = "RISKY"
	RiskLevelDanger   = "DANGER"
)

const (
	FlagCritical = "critical"
	FlagHigh     = "high"
	FlagMedium   = "medium"
)

// RiskFlag explains one scoring rule that fired.
type RiskFlag struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

// RiskAssessment is the scorer output. Flags keep rule-evaluation order.
type RiskAssessment struct {
	Score int
	Level string
	Flags []RiskFlag
}

type MarketDetails struct {
	DexID          *string  `json:"dex_id"`
	PriceChange24h *float64 `json:"price_change_24h"`
	FDV            *float64 `json:"fdv"`
}

type AnalysisDetails struct {
	MarketData MarketDetails    `json:"market_data"`
	OnChain    *OnChainSnapshot `json:"on_chain"`
}

// AnalysisResult is the externally visible record, the unit cached and
// persisted.
type AnalysisResult struct {
	ContractAddress string          `json:"contract_address"`
	Chain           string          `json:"chain"`
	RiskScore       int             `json:"risk_score"`
	RiskLevel       string          `json:"risk_level"`
	ContractName    string          `json:"contract_name"`
	Symbol          string          `json:"symbol"`
	PriceUSD        *float64        `json:"price_usd"`
	LiquidityUSD    *float64        `json:"liquidity_usd"`
	Volume24h       *float64        `json:"volume_24h"`
	Flags           []RiskFlag      `json:"flags"`
	Details         AnalysisDetails `json:"details"`
	AnalyzedAt      time.Time       `json:"analyzed_at"`
}
