package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Credentials is one API key / secret pair. It lives only for the duration
// of a single audit run and is never written back anywhere.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Registry reads named credential profiles from an ini file, one section per
// profile with api_key and api_secret keys.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetCredentials(ctx context.Context, profile string) (Credentials, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// DefaultCredentialsPath returns ~/.config/binance-audit/credentials.
func DefaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "binance-audit", "credentials")
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials file: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetCredentials(_ context.Context, profile string) (Credentials, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return Credentials{}, fmt.Errorf("profile %q not found", profile)
	}

	creds := Credentials{
		APIKey:    section.Key("api_key").String(),
		APISecret: section.Key("api_secret").String(),
	}
	if creds.APIKey == "" || creds.APISecret == "" {
		return Credentials{}, fmt.Errorf("profile %q is missing api_key or api_secret", profile)
	}
	return creds, nil
}
