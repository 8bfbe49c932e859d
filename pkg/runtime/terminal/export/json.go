package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/api"
	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

// JSONReporter writes the audit report in its wire form, for piping into
// other tooling.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	return &JSONReporter{writer: writer}
}

func (r *JSONReporter) Handle(report *domain.AuditReport) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(api.FromDomain(report)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
