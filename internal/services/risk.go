package services

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/degenscope/scanner-backend/internal/types"
)

// usd formats flag amounts with digit grouping for display.
var usd = message.NewPrinter(language.English)

// ScoreToken turns whatever snapshots the fetch round produced into a risk
// assessment. Pure and deterministic: rules run in a fixed order, each one
// adds to the score and appends exactly one flag when it fires. A nil
// snapshot contributes nothing; unknown is never flagged as risky.
func ScoreToken(sec *types.SecuritySnapshot, market *types.MarketPair, onchain *types.OnChainSnapshot) types.RiskAssessment {
	score := 0
	flags := []types.RiskFlag{}

	addFlag := func(delta int, tier, msg string) {
		score += delta
		flags = append(flags, types.RiskFlag{Type: tier, Msg: msg})
	}

	if sec != nil {
		if sec.Honeypot {
			addFlag(40, types.FlagCritical, "HONEYPOT: holders cannot sell")
		}
		if sec.SourceUnverified {
			addFlag(20, types.FlagHigh, "Contract source code not verified")
		}
		if sec.OwnershipRecoverable {
			addFlag(15, types.FlagHigh, "Owner can take back ownership")
		}
		if sec.OwnerChangeBalance {
			addFlag(20, types.FlagCritical, "Owner can modify holder balances")
		}
		if sec.HiddenOwner {
			addFlag(15, types.FlagHigh, "Hidden owner in contract")
		}
		if sec.SelfDestruct {
			addFlag(15, types.FlagHigh, "Selfdestruct function present")
		}
		if sec.Blacklist {
			addFlag(10, types.FlagMedium, "Blacklist function present")
		}
		if sec.Mintable {
			addFlag(10, types.FlagMedium, "Token is mintable")
		}
		if sec.SellTax != nil {
			tax := *sec.SellTax
			if tax > 0.10 {
				addFlag(15, types.FlagHigh, fmt.Sprintf("High sell tax: %.1f%%", tax*100))
			} else if tax > 0.05 {
				addFlag(5, types.FlagMedium, fmt.Sprintf("Sell tax: %.1f%%", tax*100))
			}
		}
		if sec.BuyTax != nil && *sec.BuyTax > 0.10 {
			addFlag(10, types.FlagMedium, fmt.Sprintf("High buy tax: %.1f%%", *sec.BuyTax*100))
		}
		if sec.HolderCount != nil && *sec.HolderCount < 100 {
			addFlag(10, types.FlagMedium, fmt.Sprintf("Very few holders: %d", *sec.HolderCount))
		}
	}

	if market != nil {
		liquidity := 0.0
		if market.LiquidityUSD != nil {
			liquidity = *market.LiquidityUSD
		}
		if liquidity < 10000 {
			addFlag(15, types.FlagHigh, usd.Sprintf("Very low liquidity: $%.0f", liquidity))
		} else if liquidity < 50000 {
			addFlag(5, types.FlagMedium, usd.Sprintf("Low liquidity: $%.0f", liquidity))
		}
	}

	if onchain != nil && onchain.ConcentratedWallets {
		top10 := "?"
		if onchain.Top10Pct != nil {
			top10 = fmt.Sprintf("%.2f", *onchain.Top10Pct)
		}
		addFlag(10, types.FlagHigh, fmt.Sprintf("Top 10 wallets hold %s%% of supply", top10))
	}

	if score > 100 {
		score = 100
	}

	return types.RiskAssessment{
		Score: score,
		Level: riskLevel(score),
		Flags: flags,
	}
}

func riskLevel(score int) string {
	switch {
	case score >= 70:
		return types.RiskLevelDanger
	case score >= 40:
		return types.RiskLevelRisky
	case score >= 20:
		return types.RiskLevelModerate
	default:
		return types.RiskLevelSafe
	}
}
