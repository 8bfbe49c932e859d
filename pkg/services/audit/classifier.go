package audit

import (
	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

// Binance permission flag names as reported by /sapi/v1/account/apiRestrictions.
const (
	FlagIPRestrict      = "ipRestrict"
	FlagReading         = "enableReading"
	FlagWithdrawals     = "enableWithdrawals"
	FlagFutures         = "enableFutures"
	FlagPortfolioMargin = "enablePortfolioMarginTrading"
)

// enabledSeverity maps a permission name to the severity it carries when the
// flag is on. Names not listed here are harmless when enabled. Disabled flags
// are always SeverityLowOff regardless of name.
var enabledSeverity = map[string]domain.Severity{
	FlagWithdrawals:     domain.SeverityHigh,
	FlagFutures:         domain.SeverityMedium,
	FlagPortfolioMargin: domain.SeverityMedium,
}

// Classify annotates every flag in the snapshot with a severity and reduces
// them to an aggregate risk level. The returned statuses keep the snapshot's
// own flag order. Classification is pure and total: unknown flags fall into
// the default bucket and disabled flags never escalate risk.
func Classify(s *domain.PermissionSnapshot) ([]domain.PermissionStatus, domain.RiskLevel) {
	flags := s.Flags()
	statuses := make([]domain.PermissionStatus, 0, len(flags))
	risk := domain.RiskLow

	for _, f := range flags {
		severity := domain.SeverityLowOff
		if f.Enabled {
			var ok bool
			if severity, ok = enabledSeverity[f.Name]; !ok {
				severity = domain.SeverityNormal
			}
		}

		switch severity {
		case domain.SeverityHigh:
			risk = domain.RiskHigh
		case domain.SeverityMedium:
			if risk != domain.RiskHigh {
				risk = domain.RiskMedium
			}
		}

		statuses = append(statuses, domain.PermissionStatus{
			Name:     f.Name,
			Enabled:  f.Enabled,
			Severity: severity,
		})
	}

	return statuses, risk
}
