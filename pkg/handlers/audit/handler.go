package audit

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/api"
	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
	"github.com/soonlabs/binance-api-key-audit/pkg/store/binance"
)

// Runner audits one credential pair. Satisfied by *audit.Auditor.
type Runner interface {
	Run(ctx context.Context, apiKey, apiSecret string) (*domain.AuditReport, error)
}

type Handler struct {
	runner Runner
}

func NewHandler(runner Runner) *Handler {
	return &Handler{runner: runner}
}

type auditRequest struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

// RunAudit audits the credentials in the request body and returns the JSON
// report. Credentials exist only for the request; they are never logged or
// persisted.
func (h *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.APIKey == "" || req.APISecret == "" {
		writeError(w, http.StatusBadRequest, "api_key and api_secret are required")
		return
	}

	report, err := h.runner.Run(ctx, req.APIKey, req.APISecret)
	if err != nil {
		logger.Warn().Err(err).Msg("audit failed")
		status := http.StatusBadGateway
		if binance.IsAuthError(err) {
			writeError(w, status, "exchange rejected the credentials")
			return
		}
		writeError(w, status, "audit could not run")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(api.FromDomain(report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode audit report")
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
