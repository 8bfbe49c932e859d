package binance

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/soonlabs/binance-api-key-audit/pkg/models/domain"
)

const (
	DefaultBaseURL    = "https://api.binance.com"
	DefaultRecvWindow = 5 * time.Second
	DefaultTimeout    = 10 * time.Second

	apiKeyHeader        = "X-MBX-APIKEY"
	apiRestrictionsPath = "/sapi/v1/account/apiRestrictions"
	createTimeField     = "createTime"
)

type Settings struct {
	BaseURL    string
	Timeout    time.Duration
	RecvWindow time.Duration
}

// Client talks to the Binance REST API with signed requests. It holds no
// credential material; keys are passed per call and discarded.
type Client struct {
	baseURL    string
	recvWindow time.Duration
	httpClient *http.Client
}

func NewClient(settings Settings) *Client {
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}
	if settings.RecvWindow <= 0 {
		settings.RecvWindow = DefaultRecvWindow
	}
	return &Client{
		baseURL:    settings.BaseURL,
		recvWindow: settings.RecvWindow,
		httpClient: &http.Client{Timeout: settings.Timeout},
	}
}

// FetchPermissions retrieves the API key restriction flags for the given
// credential pair. The snapshot keeps the flags in the order the API
// reported them.
func (c *Client) FetchPermissions(ctx context.Context, apiKey, apiSecret string) (*domain.PermissionSnapshot, error) {
	logger := zerolog.Ctx(ctx)

	query := url.Values{}
	query.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	query.Set("recvWindow", strconv.FormatInt(c.recvWindow.Milliseconds(), 10))
	signed := sign(query.Encode(), apiSecret)

	reqURL := fmt.Sprintf("%s%s?%s&signature=%s", c.baseURL, apiRestrictionsPath, query.Encode(), signed)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build api restrictions request: %w", err)
	}
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api restrictions request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read api restrictions response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := decodeAPIError(resp.StatusCode, body)
		logger.Warn().Int("status", resp.StatusCode).Int64("code", apiErr.Code).
			Msg("binance rejected the api restrictions request")
		return nil, apiErr
	}

	snapshot, err := decodeSnapshot(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode api restrictions response: %w", err)
	}

	logger.Debug().Int("flags", snapshot.Len()).Msg("fetched api key permissions")
	return snapshot, nil
}

// sign computes the HMAC-SHA256 hex signature Binance expects over the
// request query string.
func sign(queryString, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(queryString))
	return hex.EncodeToString(mac.Sum(nil))
}

// decodeSnapshot walks the response object token by token so the snapshot
// records flags in the server's key order. Boolean fields become permission
// flags, createTime becomes snapshot metadata, anything else is skipped.
func decodeSnapshot(body []byte) (*domain.PermissionSnapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	snapshot := domain.NewPermissionSnapshot()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch val := valTok.(type) {
		case bool:
			snapshot.Set(key, val)
		case json.Number:
			if key == createTimeField {
				ms, err := val.Int64()
				if err != nil {
					return nil, fmt.Errorf("invalid %s value %q: %w", createTimeField, val, err)
				}
				snapshot.CreateTime = time.UnixMilli(ms).UTC()
			}
		case json.Delim:
			// Nested values carry no permission signal; skip them whole
			// so the key/value walk stays aligned.
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		default:
			// Non-boolean, non-metadata fields carry no permission signal.
		}
	}

	return snapshot, nil
}

// skipValue consumes the remaining tokens of a compound value whose opening
// delimiter was already read.
func skipValue(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
