// Package speech provides a Controller for the outbound voice-synthesis API and its credentials management.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/surfingcloud9/dakota-leads/internal/controllers/aws"
	"github.com/surfingcloud9/dakota-leads/internal/helpers"
)

// APIKeyHeader is the credential header expected by the voice-synthesis API.
const APIKeyHeader = "xi-api-key"

// Option is a functional option used to configure or modify the properties of a Controller instance.
type Option func(*Controller)

// Controller encapsulates outbound calls to the voice-synthesis API and
// credentials management for the supported authentication modes.
type Controller struct {
	logger *slog.Logger

	authMode      string
	ssmKey        string
	apiKey        string
	baseURL       string
	voiceID       string
	modelID       string
	timeout       time.Duration
	client        *http.Client
	awsController *aws.Controller

	credMu sync.Mutex
}

type synthesisRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id,omitempty"`
}

// NewController initializes a new Controller with the provided options, setting defaults where necessary.
func NewController(opts ...Option) (*Controller, error) {
	_inst := new(Controller)
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.logger = _inst.logger.With("authMode", _inst.authMode)
	if _inst.baseURL == "" {
		return nil, errors.New("missing voice-synthesis base URL")
	}
	if _, err := url.Parse(_inst.baseURL); err != nil {
		return nil, errors.Wrap(err, "invalid voice-synthesis base URL")
	}
	if _inst.timeout <= 0 {
		_inst.timeout = 10 * time.Second
	}
	if _inst.client == nil {
		_inst.client = &http.Client{Timeout: _inst.timeout}
	}
	return _inst, nil
}

// Timeout returns the bound applied to each outbound synthesis call.
func (c *Controller) Timeout() time.Duration {
	return c.timeout
}

// RetrieveCredentials fetches the API key from the environment-provided value or SSM.
// The SSM lookup happens once; subsequent calls reuse the cached key.
func (c *Controller) RetrieveCredentials() error {
	c.credMu.Lock()
	defer c.credMu.Unlock()
	switch strings.TrimSpace(strings.ToLower(c.authMode)) {
	case "env", "":
		if c.apiKey == "" {
			return errors.New("missing [SPEECH_API_KEY]")
		}
		return nil
	case "ssm":
		if c.apiKey != "" {
			c.logger.Debug("using cached API key...")
			return nil
		}
		if c.ssmKey == "" {
			return errors.New("missing SSM parameter key")
		}
		c.logger.Debug("retrieving API key from SSM...")
		secret, err := c.awsController.GetSecret(c.ssmKey, true)
		if err != nil {
			return errors.Wrap(err, "failed to fetch API key from SSM")
		}
		c.apiKey = strings.TrimSpace(*secret)
		return nil
	default:
		return fmt.Errorf("unsupported auth mode: %s", c.authMode)
	}
}

// Synthesize issues one text-to-speech request and discards the returned
// audio. The call is bounded by the controller timeout in addition to any
// deadline on ctx.
func (c *Controller) Synthesize(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(synthesisRequest{Text: text, ModelID: c.modelID})
	if err != nil {
		return errors.Wrap(err, "failed to marshal synthesis request")
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", strings.TrimSuffix(c.baseURL, "/"), c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build synthesis request")
	}
	req.Header.Set("Content-Type", "application/json")

	c.credMu.Lock()
	req.Header.Set(APIKeyHeader, c.apiKey)
	c.credMu.Unlock()

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "synthesis request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("synthesis request rejected: status=%d body=%q", resp.StatusCode, body)
	}

	written, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to drain synthesis response")
	}
	c.logger.Debug("synthesis complete", slog.Int64("audioBytes", written))
	return nil
}
