package config

import "os"

const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvAPISecret = "BINANCE_API_SECRET"
)

// FromEnv returns credentials from the environment, and whether both
// halves were present.
func FromEnv() (Credentials, bool) {
	creds := Credentials{
		APIKey:    os.Getenv(EnvAPIKey),
		APISecret: os.Getenv(EnvAPISecret),
	}
	return creds, creds.APIKey != "" && creds.APISecret != ""
}
