package audit

import (
	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

type recommendationRule struct {
	when  func(s *domain.PermissionSnapshot) bool
	entry domain.Recommendation
}

// recommendationRules is evaluated top to bottom; emission order in the
// report follows this table, not snapshot order. Rules are independent —
// one firing never suppresses another — and absent flags read as false.
var recommendationRules = []recommendationRule{
	{
		when: func(s *domain.PermissionSnapshot) bool { return s.Enabled(FlagWithdrawals) },
		entry: domain.Recommendation{
			Title:  "Disable withdrawals",
			Reason: "This API key can move funds out of the account.",
			Risk:   "HIGH",
			Action: "Disable the withdrawal permission immediately unless this key absolutely requires it.",
		},
	},
	{
		when: func(s *domain.PermissionSnapshot) bool { return !s.Enabled(FlagIPRestrict) },
		entry: domain.Recommendation{
			Title:  "Enable IP whitelist",
			Reason: "The key is usable from any IP address; a leaked key is immediately exploitable.",
			Risk:   "MEDIUM-HIGH",
			Action: "Restrict the key to the static IP addresses of the hosts that use it.",
		},
	},
	{
		when: func(s *domain.PermissionSnapshot) bool { return !s.Enabled(FlagReading) },
		entry: domain.Recommendation{
			Title:  "Enable read-only access",
			Reason: "Reading is disabled, so balance and history queries will fail for auditing tools.",
			Risk:   "LOW",
			Action: "Enable the reading permission so monitoring and audit tooling can inspect the account.",
		},
	},
	{
		when: func(s *domain.PermissionSnapshot) bool { return s.Enabled(FlagFutures) },
		entry: domain.Recommendation{
			Title:  "Futures trading enabled",
			Reason: "Futures positions can leverage and liquidate account funds.",
			Risk:   "HIGH",
			Action: "Keep this key confined to trusted trading bots and disable futures if unused.",
		},
	},
	{
		when: func(s *domain.PermissionSnapshot) bool { return s.Enabled(FlagPortfolioMargin) },
		entry: domain.Recommendation{
			Title:  "Portfolio margin enabled",
			Reason: "Portfolio margin trading exposes the whole account as collateral.",
			Risk:   "HIGH",
			Action: "Restrict this key to a trusted environment and disable portfolio margin if unused.",
		},
	},
}

// Recommend returns the remediation entries whose conditions hold for the
// snapshot, in the fixed rule-table order. A fully locked-down key yields an
// empty list.
func Recommend(s *domain.PermissionSnapshot) []domain.Recommendation {
	var out []domain.Recommendation
	for _, rule := range recommendationRules {
		if rule.when(s) {
			out = append(out, rule.entry)
		}
	}
	return out
}
