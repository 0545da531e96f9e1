// Package handler implements the webhook intake contract: validate, acknowledge,
// and dispatch the best-effort voice-synthesis side effect.
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/surfingcloud9/dakota-leads/internal/controllers/aws"
	"github.com/surfingcloud9/dakota-leads/internal/controllers/speech"
	"github.com/surfingcloud9/dakota-leads/internal/models"
	"github.com/surfingcloud9/dakota-leads/internal/validation"
)

// Option is a functional option applied to a Handler during construction.
type Option func(*Handler)

// Handler processes inbound webhook and SMS payloads. Each request is handled
// independently and statelessly; the only shared collaborator is the speech
// controller, which is safe for concurrent use.
type Handler struct {
	ctx              context.Context
	logger           *slog.Logger
	speechController *speech.Controller
	sharedSecret     *validation.SharedSecret
	textKeys         []string
	speechEnabled    bool

	authMode string
	ssmKey   string
	apiKey   string
	baseURL  string
	voiceID  string
	modelID  string
	timeout  time.Duration
}

// NewIntakeHandler builds a Handler from the provided options. When speech
// synthesis is enabled and no controller was injected, the speech controller
// (and, for SSM auth, the AWS controller) is constructed here.
func NewIntakeHandler(options ...Option) (*Handler, error) {
	_inst := &Handler{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		opt(_inst)
	}

	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	if len(_inst.textKeys) == 0 {
		_inst.textKeys = []string{"text", "message", "body"}
	}

	if _inst.speechEnabled && _inst.speechController == nil {
		speechOpts := []speech.Option{
			speech.WithLogger(_inst.logger.With("component", "speech-controller")),
			speech.WithAuthMode(_inst.authMode),
			speech.WithAPIKey(_inst.apiKey),
			speech.WithBaseURL(_inst.baseURL),
			speech.WithVoice(_inst.voiceID, _inst.modelID),
			speech.WithTimeout(_inst.timeout),
		}
		if _inst.authMode == "ssm" {
			awsCtl, err := aws.NewController(
				aws.WithLogger(_inst.logger.With("component", "aws-controller")),
				aws.WithContext(_inst.ctx))
			if err != nil {
				return nil, errors.Wrap(err, "failed to create AWS controller")
			}
			speechOpts = append(speechOpts,
				speech.WithSSMKey(_inst.ssmKey),
				speech.WithAWSController(awsCtl))
		}
		speechCtl, err := speech.NewController(speechOpts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create the speech controller")
		}
		_inst.speechController = speechCtl
	}

	return _inst, nil
}

// Process handles one JSON webhook request. The shared secret is checked
// before the payload so an unauthenticated caller is rejected regardless of
// payload validity.
func (h *Handler) Process(body []byte, headers map[string]string) (models.Response, error) {
	logger := h.logger
	logger.Info("processing webhook request...")

	if err := h.sharedSecret.ValidateToken(headers); err != nil {
		logger.Warn("validating shared secret", slog.Any("error", err))
		return models.Response{Body: "invalid shared secret", StatusCode: http.StatusForbidden}, err
	}

	event, err := models.ParseWebhookEvent(body)
	if err != nil {
		logger.Warn("parsing payload", slog.Any("error", err))
		return models.Response{Body: "invalid payload", StatusCode: http.StatusBadRequest}, err
	}
	logger.Debug("request body is valid", slog.Int("fields", len(event)))

	if text, found := event.Text(h.textKeys); found {
		h.dispatchSynthesis(logger, text)
	} else if h.speechEnabled {
		logger.Debug("no text field in payload, skipping synthesis", slog.Any("candidates", h.textKeys))
	}

	return models.Response{Body: "received", StatusCode: http.StatusAccepted}, nil
}

// ProcessSMS handles one form-encoded SMS webhook request.
func (h *Handler) ProcessSMS(form url.Values, headers map[string]string) (models.Response, error) {
	logger := h.logger
	logger.Info("processing sms request...")

	if err := h.sharedSecret.ValidateToken(headers); err != nil {
		logger.Warn("validating shared secret", slog.Any("error", err))
		return models.Response{Body: "invalid shared secret", StatusCode: http.StatusForbidden}, err
	}

	event, err := models.ParseSMSEvent(form)
	if err != nil {
		logger.Warn("parsing sms form", slog.Any("error", err))
		return models.Response{Body: "invalid sms payload", StatusCode: http.StatusBadRequest}, err
	}
	logger = logger.With(slog.String("from", event.From))
	logger.Debug("sms form is valid")

	h.dispatchSynthesis(logger, event.Body)

	return models.Response{Body: "ok", StatusCode: http.StatusOK}, nil
}

// dispatchSynthesis fires the outbound synthesis call on its own goroutine.
// The call is bounded by the speech controller timeout; failure is logged and
// never reaches the intake response.
func (h *Handler) dispatchSynthesis(logger *slog.Logger, text string) {
	if !h.speechEnabled || h.speechController == nil {
		return
	}
	go func() {
		if err := h.speechController.RetrieveCredentials(); err != nil {
			logger.Error("failed to retrieve speech credentials", slog.Any("error", err))
			return
		}
		if err := h.speechController.Synthesize(h.ctx, text); err != nil {
			logger.Error("speech synthesis failed", slog.Any("error", err))
			return
		}
		logger.Info("speech synthesis dispatched")
	}()
}
