package audit

import (
	"testing"
	"time"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFrom(flags ...domain.PermissionFlag) *domain.PermissionSnapshot {
	s := domain.NewPermissionSnapshot()
	s.CreateTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, f := range flags {
		s.Set(f.Name, f.Enabled)
	}
	return s
}

func TestClassify_SeverityTable(t *testing.T) {
	tests := []struct {
		name     string
		flag     domain.PermissionFlag
		expected domain.Severity
	}{
		{"withdrawals enabled is high risk", domain.PermissionFlag{Name: FlagWithdrawals, Enabled: true}, domain.SeverityHigh},
		{"futures enabled is medium risk", domain.PermissionFlag{Name: FlagFutures, Enabled: true}, domain.SeverityMedium},
		{"portfolio margin enabled is medium risk", domain.PermissionFlag{Name: FlagPortfolioMargin, Enabled: true}, domain.SeverityMedium},
		{"reading enabled is normal", domain.PermissionFlag{Name: FlagReading, Enabled: true}, domain.SeverityNormal},
		{"unknown flag enabled is normal", domain.PermissionFlag{Name: "enableSomethingNew", Enabled: true}, domain.SeverityNormal},
		{"withdrawals disabled is informational off", domain.PermissionFlag{Name: FlagWithdrawals, Enabled: false}, domain.SeverityLowOff},
		{"unknown flag disabled is informational off", domain.PermissionFlag{Name: "enableSomethingNew", Enabled: false}, domain.SeverityLowOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statuses, _ := Classify(snapshotFrom(tt.flag))
			require.Len(t, statuses, 1)
			assert.Equal(t, tt.expected, statuses[0].Severity)
			assert.Equal(t, tt.flag.Name, statuses[0].Name)
			assert.Equal(t, tt.flag.Enabled, statuses[0].Enabled)
		})
	}
}

func TestClassify_AggregateRisk(t *testing.T) {
	t.Run("high iff any high severity entry", func(t *testing.T) {
		_, risk := Classify(snapshotFrom(
			domain.PermissionFlag{Name: FlagReading, Enabled: true},
			domain.PermissionFlag{Name: FlagWithdrawals, Enabled: true},
			domain.PermissionFlag{Name: FlagFutures, Enabled: false},
		))
		assert.Equal(t, domain.RiskHigh, risk)
	})

	t.Run("medium when only medium severity entries", func(t *testing.T) {
		_, risk := Classify(snapshotFrom(
			domain.PermissionFlag{Name: FlagFutures, Enabled: true},
			domain.PermissionFlag{Name: FlagWithdrawals, Enabled: false},
		))
		assert.Equal(t, domain.RiskMedium, risk)
	})

	t.Run("high is never downgraded by later entries", func(t *testing.T) {
		_, risk := Classify(snapshotFrom(
			domain.PermissionFlag{Name: FlagWithdrawals, Enabled: true},
			domain.PermissionFlag{Name: FlagFutures, Enabled: true},
			domain.PermissionFlag{Name: FlagReading, Enabled: true},
		))
		assert.Equal(t, domain.RiskHigh, risk)
	})

	t.Run("low when nothing risky is enabled", func(t *testing.T) {
		_, risk := Classify(snapshotFrom(
			domain.PermissionFlag{Name: FlagIPRestrict, Enabled: true},
			domain.PermissionFlag{Name: FlagReading, Enabled: true},
			domain.PermissionFlag{Name: FlagWithdrawals, Enabled: false},
		))
		assert.Equal(t, domain.RiskLow, risk)
	})

	t.Run("ip restriction and reading never influence risk", func(t *testing.T) {
		_, risk := Classify(snapshotFrom(
			domain.PermissionFlag{Name: FlagIPRestrict, Enabled: false},
			domain.PermissionFlag{Name: FlagReading, Enabled: false},
		))
		assert.Equal(t, domain.RiskLow, risk)
	})

	t.Run("unknown enabled flag contributes nothing", func(t *testing.T) {
		statuses, risk := Classify(snapshotFrom(
			domain.PermissionFlag{Name: "enableMysteryFeature", Enabled: true},
		))
		require.Len(t, statuses, 1)
		assert.Equal(t, domain.SeverityNormal, statuses[0].Severity)
		assert.Equal(t, domain.RiskLow, risk)
	})
}

func TestClassify_PreservesSnapshotOrder(t *testing.T) {
	s := snapshotFrom(
		domain.PermissionFlag{Name: FlagIPRestrict, Enabled: false},
		domain.PermissionFlag{Name: FlagReading, Enabled: true},
		domain.PermissionFlag{Name: FlagWithdrawals, Enabled: false},
		domain.PermissionFlag{Name: FlagFutures, Enabled: true},
	)

	statuses, _ := Classify(s)
	require.Len(t, statuses, s.Len())

	names := make([]string, 0, len(statuses))
	for _, st := range statuses {
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{FlagIPRestrict, FlagReading, FlagWithdrawals, FlagFutures}, names)
}

func TestClassify_Idempotent(t *testing.T) {
	s := snapshotFrom(
		domain.PermissionFlag{Name: FlagIPRestrict, Enabled: false},
		domain.PermissionFlag{Name: FlagWithdrawals, Enabled: true},
		domain.PermissionFlag{Name: "enableVanillaOptions", Enabled: true},
	)

	first, firstRisk := Classify(s)
	second, secondRisk := Classify(s)

	assert.Equal(t, first, second)
	assert.Equal(t, firstRisk, secondRisk)
}

func TestClassify_EmptySnapshot(t *testing.T) {
	statuses, risk := Classify(snapshotFrom())
	assert.Empty(t, statuses)
	assert.Equal(t, domain.RiskLow, risk)
}
