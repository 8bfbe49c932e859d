package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
	"github.com/soonlabs/binance-api-key-audit/pkg/runtime/terminal/export"
	"github.com/soonlabs/binance-api-key-audit/pkg/runtime/terminal/prompt"
	"github.com/soonlabs/binance-api-key-audit/pkg/services/audit"
	"github.com/soonlabs/binance-api-key-audit/pkg/services/config"
	"github.com/soonlabs/binance-api-key-audit/pkg/store/binance"
	"github.com/soonlabs/binance-api-key-audit/pkg/store/ipinfo"
)

type reportHandler interface {
	Handle(report *domain.AuditReport) error
}

type AuditCmd struct {
	profile         string
	credentialsPath string
	configPath      string
	format          string
	noColor         bool
	timeout         time.Duration

	output    io.Writer
	errOutput io.Writer
}

func NewAuditCmd(output, errOutput io.Writer) *cobra.Command {
	ac := &AuditCmd{output: output, errOutput: errOutput}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the permissions of one API key",
		Long: "Fetches the key's permission restrictions from Binance, classifies " +
			"each flag into a risk severity and prints remediation recommendations.",
		RunE: ac.run,
	}

	cmd.Flags().StringVar(&ac.profile, "profile", "default", "Credentials profile to audit")
	cmd.Flags().StringVar(&ac.credentialsPath, "credentials", "", "Path to the ini credentials file")
	cmd.Flags().StringVar(&ac.configPath, "config", "", "Path to the audit config file")
	cmd.Flags().StringVar(&ac.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&ac.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().DurationVar(&ac.timeout, "timeout", 30*time.Second, "Overall audit timeout")

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(ac.errOutput).With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(cmd.Context(), ac.timeout)
	defer cancel()
	ctx = logger.WithContext(ctx)

	settings, err := config.LoadSettings(ac.configPath)
	if err != nil {
		return err
	}

	reporter, err := ac.newReporter()
	if err != nil {
		return err
	}

	creds, err := ac.resolveCredentials(ctx)
	if err != nil {
		return err
	}

	client := binance.NewClient(binance.Settings{
		BaseURL:    settings.BaseURL,
		Timeout:    settings.Timeout,
		RecvWindow: settings.RecvWindow,
	})

	report, err := audit.NewAuditor(client).Run(ctx, creds.APIKey, creds.APISecret)
	if err != nil {
		if binance.IsAuthError(err) {
			ac.printWhitelistHint(ctx)
		}
		return fmt.Errorf("audit could not run: %w", err)
	}

	return reporter.Handle(report)
}

func (ac *AuditCmd) newReporter() (reportHandler, error) {
	switch ac.format {
	case "text":
		return export.NewReporter(ac.output, export.Options{NoColor: ac.noColor}), nil
	case "json":
		return export.NewJSONReporter(ac.output), nil
	default:
		return nil, fmt.Errorf("unsupported format %q, expected text or json", ac.format)
	}
}

// resolveCredentials checks the environment, then the credentials file, then
// falls back to an interactive prompt. Whatever wins lives only for this run.
func (ac *AuditCmd) resolveCredentials(ctx context.Context) (config.Credentials, error) {
	if creds, ok := config.FromEnv(); ok {
		return creds, nil
	}

	path := ac.credentialsPath
	if path == "" {
		path = config.DefaultCredentialsPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			registry, err := config.NewRegistry(path)
			if err != nil {
				return config.Credentials{}, err
			}
			return registry.GetCredentials(ctx, ac.profile)
		}
		if ac.credentialsPath != "" {
			return config.Credentials{}, fmt.Errorf("credentials file %s not found", ac.credentialsPath)
		}
	}

	if prompt.IsInteractive() {
		return prompt.Credentials(os.Stdin, ac.errOutput)
	}

	return config.Credentials{}, fmt.Errorf(
		"no credentials: set %s and %s, provide a credentials file, or run interactively",
		config.EnvAPIKey, config.EnvAPISecret)
}

// printWhitelistHint tells the user which egress IP to whitelist when
// Binance rejected the key. Lookup failures are logged and swallowed so the
// original audit error stays the headline.
func (ac *AuditCmd) printWhitelistHint(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	ip, err := ipinfo.NewResolver("").Lookup(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("public ip lookup failed")
		return
	}
	fmt.Fprintf(ac.errOutput,
		"Hint: the key may be IP-restricted. Your current public IP is %s; add it to the key's whitelist.\n", ip)
}
