// Package prompt reads credentials interactively, keeping the secret off
// the terminal echo.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/soonlabs/binance-api-key-audit/pkg/services/config"
)

// IsInteractive reports whether stdin is attached to a terminal, i.e.
// whether prompting the user is possible at all.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Credentials prompts for an API key and secret on the given streams. The
// secret is read with echo disabled; input must be a real terminal for
// that, so callers should check IsInteractive first.
func Credentials(in *os.File, out io.Writer) (config.Credentials, error) {
	fmt.Fprint(out, "API key: ")
	reader := bufio.NewReader(in)
	key, err := reader.ReadString('\n')
	if err != nil {
		return config.Credentials{}, fmt.Errorf("failed to read api key: %w", err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return config.Credentials{}, fmt.Errorf("api key must not be empty")
	}

	fmt.Fprint(out, "API secret: ")
	secretBytes, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return config.Credentials{}, fmt.Errorf("failed to read api secret: %w", err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return config.Credentials{}, fmt.Errorf("api secret must not be empty")
	}

	return config.Credentials{APIKey: key, APISecret: secret}, nil
}
