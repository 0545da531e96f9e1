// Package validation provides functionality for validating the shared-secret token that authenticates inbound webhooks.
package validation

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
)

// DefaultTokenHeader is the request header carrying the shared-secret token.
const DefaultTokenHeader = "x-webhook-token"

// SharedSecret represents a pre-agreed token used to verify that a webhook request originated from the expected sender.
type SharedSecret struct {
	token  string
	header string
}

// NewSharedSecret creates a SharedSecret checked against the given request
// header. An empty header selects DefaultTokenHeader. An empty token returns
// nil, meaning no validation is configured.
func NewSharedSecret(token, header string) *SharedSecret {
	if token == "" {
		return nil
	}
	if header == "" {
		header = DefaultTokenHeader
	}
	return &SharedSecret{token: token, header: strings.ToLower(header)}
}

// ValidateToken compares the configured token against the request headers in
// constant time. Header keys are expected lower-cased. A nil receiver means
// no secret is configured and every request passes.
func (s *SharedSecret) ValidateToken(headers map[string]string) error {
	if s == nil {
		return nil
	}
	token, found := headers[s.header]
	if !found {
		return fmt.Errorf("missing shared-secret header: %s", s.header)
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) != 1 {
		return errors.New("shared-secret token mismatch")
	}
	return nil
}
