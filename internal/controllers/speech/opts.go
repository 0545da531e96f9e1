package speech

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/surfingcloud9/dakota-leads/internal/controllers/aws"
)

// WithLogger sets a custom logger for the Controller instance to use for logging operations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithAuthMode sets the authentication mode for a Controller instance using the given mode string.
func WithAuthMode(mode string) Option {
	return func(c *Controller) {
		c.authMode = mode
	}
}

// WithAPIKey sets the environment-provided API key for the Controller instance.
func WithAPIKey(key string) Option {
	return func(c *Controller) {
		c.apiKey = key
	}
}

// WithSSMKey sets the SSM parameter used for fetching the API key.
func WithSSMKey(key string) Option {
	return func(c *Controller) {
		c.ssmKey = key
	}
}

// WithAWSController sets the awsController field of a Controller instance.
func WithAWSController(awsCtl *aws.Controller) Option {
	return func(c *Controller) {
		c.awsController = awsCtl
	}
}

// WithBaseURL sets the voice-synthesis API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Controller) {
		c.baseURL = baseURL
	}
}

// WithVoice sets the voice and model used for synthesis.
func WithVoice(voiceID, modelID string) Option {
	return func(c *Controller) {
		c.voiceID = voiceID
		c.modelID = modelID
	}
}

// WithTimeout bounds each outbound synthesis call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used for outbound calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Controller) {
		c.client = client
	}
}
