package binance

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Binance error codes that indicate the credential itself was rejected
// rather than a transport or server problem.
const (
	codeInvalidAPIKeyOrIP = -2015
	codeInvalidAPIKeyFmt  = -2014
	codeInvalidSignature  = -1022
)

// APIError is a non-2xx response decoded from the Binance error body.
type APIError struct {
	Status  int
	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("binance api error: status %d", e.Status)
	}
	return fmt.Sprintf("binance api error %d: %s", e.Code, e.Message)
}

// IsAuthError reports whether the error means Binance rejected the API key,
// its signature, or the caller's IP address.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case codeInvalidAPIKeyOrIP, codeInvalidAPIKeyFmt, codeInvalidSignature:
		return true
	}
	return apiErr.Status == 401 || apiErr.Status == 403
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	// Binance error bodies are {"code": ..., "msg": ...}; anything else
	// still surfaces as a status-only error.
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
