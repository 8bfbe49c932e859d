package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

// PermissionFetcher retrieves the permission snapshot for one credential
// pair. Implementations own transport, signing and timeouts; the auditor
// only ever sees a snapshot or an error.
type PermissionFetcher interface {
	FetchPermissions(ctx context.Context, apiKey, apiSecret string) (*domain.PermissionSnapshot, error)
}

type Auditor struct {
	fetcher  PermissionFetcher
	exchange string
	now      func() time.Time
}

func NewAuditor(fetcher PermissionFetcher) *Auditor {
	return &Auditor{
		fetcher:  fetcher,
		exchange: "binance",
		now:      time.Now,
	}
}

// Run audits one credential pair: a single fetch followed by classification
// and recommendation over the same snapshot. The credentials are used for
// the fetch only and are not retained. A fetch failure aborts the audit —
// no report is fabricated.
func (a *Auditor) Run(ctx context.Context, apiKey, apiSecret string) (*domain.AuditReport, error) {
	snapshot, err := a.fetcher.FetchPermissions(ctx, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key permissions: %w", err)
	}

	statuses, risk := Classify(snapshot)

	return &domain.AuditReport{
		Exchange:        a.exchange,
		GeneratedAt:     a.now(),
		KeyCreatedAt:    snapshot.CreateTime,
		Permissions:     statuses,
		Risk:            risk,
		Recommendations: Recommend(snapshot),
	}, nil
}
