package api

import (
	"time"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

type Permission struct {
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
	Severity string `json:"severity"`
}

type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Risk   string `json:"risk"`
	Action string `json:"action"`
}

type AuditReport struct {
	Exchange        string           `json:"exchange"`
	GeneratedAt     time.Time        `json:"generated_at"`
	KeyCreatedAt    time.Time        `json:"key_created_at"`
	Risk            string           `json:"risk"`
	Permissions     []Permission     `json:"permissions"`
	Recommendations []Recommendation `json:"recommendations"`
}

// FromDomain converts a domain report into its wire form.
func FromDomain(r *domain.AuditReport) AuditReport {
	out := AuditReport{
		Exchange:        r.Exchange,
		GeneratedAt:     r.GeneratedAt,
		KeyCreatedAt:    r.KeyCreatedAt,
		Risk:            r.Risk.String(),
		Permissions:     make([]Permission, 0, len(r.Permissions)),
		Recommendations: make([]Recommendation, 0, len(r.Recommendations)),
	}
	for _, p := range r.Permissions {
		out.Permissions = append(out.Permissions, Permission{
			Name:     p.Name,
			Enabled:  p.Enabled,
			Severity: p.Severity.String(),
		})
	}
	for _, rec := range r.Recommendations {
		out.Recommendations = append(out.Recommendations, Recommendation{
			Title:  rec.Title,
			Reason: rec.Reason,
			Risk:   rec.Risk,
			Action: rec.Action,
		})
	}
	return out
}
