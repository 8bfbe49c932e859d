package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/fatih/color"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

type Options struct {
	// NoColor disables ANSI coloring, for pipes and CI logs.
	NoColor bool
}

// Reporter renders an audit report as formatted console text. The severity
// column doubles as the on/off state: NORMAL renders as ON, disabled flags
// as OFF, risky flags as their risk wording.
type Reporter struct {
	writer  io.Writer
	noColor bool
}

func NewReporter(writer io.Writer, opts Options) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer, noColor: opts.NoColor}
}

func (c *Reporter) Handle(report *domain.AuditReport) error {
	funcMap := template.FuncMap{
		"severity": func(s domain.Severity) string {
			return c.severityPainter(s)(s.String())
		},
		"risk": func(r domain.RiskLevel) string {
			return c.riskPainter(r)(r.String())
		},
		"inc": func(i int) int { return i + 1 },
	}

	tmpl := `
Binance API key audit
Key created: {{.KeyCreatedAt.Format "2006-01-02 15:04:05 MST"}}
Generated:   {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}

=== Permissions ===
{{range .Permissions}}  {{printf "%-30s" .Name}} {{severity .Severity}}
{{end}}
Aggregate risk: {{risk .Risk}}
{{if .Recommendations}}
=== Recommendations ===
{{range $i, $r := .Recommendations}}{{inc $i}}. {{$r.Title}} [{{$r.Risk}}]
   {{$r.Reason}}
   Action: {{$r.Action}}
{{end}}{{else}}
No recommendations. This key follows the audit baseline.
{{end}}`

	t, err := template.New("audit").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func (c *Reporter) severityPainter(s domain.Severity) func(a ...interface{}) string {
	if c.noColor {
		return fmt.Sprint
	}
	switch s {
	case domain.SeverityHigh:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case domain.SeverityMedium:
		return color.New(color.FgYellow).SprintFunc()
	case domain.SeverityLowOff:
		return color.New(color.Faint).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}

func (c *Reporter) riskPainter(r domain.RiskLevel) func(a ...interface{}) string {
	if c.noColor {
		return fmt.Sprint
	}
	switch r {
	case domain.RiskHigh:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case domain.RiskMedium:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	}
}
