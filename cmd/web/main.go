package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/soonlabs/binance-api-key-audit/pkg/server"
	"github.com/soonlabs/binance-api-key-audit/pkg/services/audit"
	"github.com/soonlabs/binance-api-key-audit/pkg/services/config"
	"github.com/soonlabs/binance-api-key-audit/pkg/store/binance"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the API key audit over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the audit config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client := binance.NewClient(binance.Settings{
		BaseURL:    settings.BaseURL,
		Timeout:    settings.Timeout,
		RecvWindow: settings.RecvWindow,
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		logger.Error().Msg("missing SERVER_HOST or SERVER_PORT configuration")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Auditor: audit.NewAuditor(client),
		},
	})

	return webAPI.Start()
}
