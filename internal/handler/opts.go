package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/surfingcloud9/dakota-leads/internal/controllers/speech"
	"github.com/surfingcloud9/dakota-leads/internal/validation"
)

// WithLogger sets the logger instance for the handler.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithContext sets the context for the handler.
func WithContext(ctx context.Context) Option {
	return func(h *Handler) {
		h.ctx = ctx
	}
}

// WithSharedSecret configures the handler with the shared secret expected on
// the given request header. An empty secret disables validation.
func WithSharedSecret(secret, header string) Option {
	return func(h *Handler) {
		h.sharedSecret = validation.NewSharedSecret(secret, header)
	}
}

// WithSpeechSynthesis toggles the outbound voice-synthesis side effect.
func WithSpeechSynthesis(enabled bool) Option {
	return func(h *Handler) {
		h.speechEnabled = enabled
	}
}

// WithAuthMode sets the credential source for the speech API. Supported
// values are 'env' and 'ssm'.
func WithAuthMode(authMode string) Option {
	return func(h *Handler) {
		h.authMode = authMode
	}
}

// WithSSMKey sets the SSM parameter used to fetch the speech API key.
func WithSSMKey(key string) Option {
	return func(h *Handler) {
		h.ssmKey = key
	}
}

// WithAPIKey sets the environment-provided speech API key.
func WithAPIKey(key string) Option {
	return func(h *Handler) {
		h.apiKey = key
	}
}

// WithSpeechAPI sets the voice-synthesis endpoint, voice and model.
func WithSpeechAPI(baseURL, voiceID, modelID string) Option {
	return func(h *Handler) {
		h.baseURL = baseURL
		h.voiceID = voiceID
		h.modelID = modelID
	}
}

// WithSpeechTimeout bounds each outbound synthesis call.
func WithSpeechTimeout(timeout time.Duration) Option {
	return func(h *Handler) {
		h.timeout = timeout
	}
}

// WithTextKeys sets the payload fields inspected, in order, for the text to
// synthesize.
func WithTextKeys(keys []string) Option {
	return func(h *Handler) {
		h.textKeys = keys
	}
}

// WithSpeechController injects a pre-built speech controller, bypassing
// construction from the individual speech options.
func WithSpeechController(ctl *speech.Controller) Option {
	return func(h *Handler) {
		h.speechController = ctl
	}
}
