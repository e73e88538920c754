package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Analysis is the durable append-only row written once per completed
// (non-cache-hit) analysis.
type Analysis struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ContractAddress string         `gorm:"not null;index;column:contract_address" json:"contract_address"`
	Chain           string         `gorm:"not null;column:chain" json:"chain"`
	RiskScore       int            `gorm:"not null;column:risk_score" json:"risk_score"`
	RiskLevel       string         `gorm:"not null;column:risk_level" json:"risk_level"`
	ContractName    string         `gorm:"column:contract_name" json:"contract_name"`
	Symbol          string         `gorm:"column:symbol" json:"symbol"`
	AnalysisData    datatypes.JSON `gorm:"type:jsonb;column:analysis_data" json:"analysis_data"`
	CreatedAt       time.Time      `gorm:"not null;default:now();index" json:"created_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// AnalysisSummary is the history-listing projection, without the full
// serialized payload.
type AnalysisSummary struct {
	ContractAddress string    `json:"contract_address"`
	Chain           string    `json:"chain"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	ContractName    string    `json:"contract_name"`
	Symbol          string    `json:"symbol"`
	CreatedAt       time.Time `json:"created_at"`
}
