// Package runtime exposes the intake handler over HTTP and AWS Lambda.
package runtime

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/surfingcloud9/dakota-leads/internal/handler"
	"github.com/surfingcloud9/dakota-leads/internal/helpers"
	"github.com/surfingcloud9/dakota-leads/internal/models"
)

// Option is a functional option applied to a Runtime during construction.
type Option func(*Runtime)

// WithLogger sets the logger instance for the runtime.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithRoutes sets the paths the Lambda front-end routes on. They must match
// the paths registered with the HTTP mux in service mode.
func WithRoutes(webhookPath, smsPath, healthPath string) Option {
	return func(r *Runtime) {
		r.webhookPath = webhookPath
		r.smsPath = smsPath
		r.healthPath = healthPath
	}
}

// WithLambdaPayloadType sets the Lambda response payload shape. Supported
// values are 'api-gateway-v1', 'api-gateway-v2' and 'lambda-url'.
func WithLambdaPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.lambdaPayloadType = payloadType
	}
}

// Runtime adapts the intake handler to the transports it is served on.
type Runtime struct {
	*handler.Handler
	logger *slog.Logger

	webhookPath       string
	smsPath           string
	healthPath        string
	lambdaPayloadType string
}

// NewRuntime creates a new runtime instance.
func NewRuntime(handler *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{Handler: handler}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if _inst.webhookPath == "" {
		_inst.webhookPath = "/webhook"
	}
	if _inst.smsPath == "" {
		_inst.smsPath = "/sms"
	}
	if _inst.healthPath == "" {
		_inst.healthPath = "/health"
	}
	if _inst.lambdaPayloadType == "" {
		_inst.lambdaPayloadType = "api-gateway-v2"
	}
	return _inst
}

// ServeWebhook is the HTTP handler for the JSON webhook route.
func (r *Runtime) ServeWebhook(resp http.ResponseWriter, req *http.Request) {
	if !r.allowPost(resp, req) {
		return
	}

	r.logger.Debug("received webhook request...", slog.Any("requestor", req.RemoteAddr), slog.Any("path", req.URL.Path))
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, err, resp)
		return
	}

	result, err := r.Handler.Process(body, lowercaseHeaders(req.Header))
	helpers.RespondHTTP(result, err, resp)
}

// ServeSMS is the HTTP handler for the form-encoded SMS route.
func (r *Runtime) ServeSMS(resp http.ResponseWriter, req *http.Request) {
	if !r.allowPost(resp, req) {
		return
	}

	r.logger.Debug("received sms request...", slog.Any("requestor", req.RemoteAddr), slog.Any("path", req.URL.Path))
	if err := req.ParseForm(); err != nil {
		r.logger.Warn("failed to parse sms form", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{Body: "invalid sms payload", StatusCode: http.StatusBadRequest}, err, resp)
		return
	}

	result, err := r.Handler.ProcessSMS(req.PostForm, lowercaseHeaders(req.Header))
	helpers.RespondHTTP(result, err, resp)
}

// ServeHealth is the HTTP handler for the health route.
func (r *Runtime) ServeHealth(resp http.ResponseWriter, req *http.Request) {
	helpers.RespondHTTP(models.Response{Body: "ok", StatusCode: http.StatusOK}, nil, resp)
}

// HandleEvent routes a transport-neutral request by path, mirroring the HTTP mux.
func (r *Runtime) HandleEvent(req models.Request) (models.Response, error) {
	switch req.Path {
	case r.healthPath:
		return models.Response{Body: "ok", StatusCode: http.StatusOK}, nil
	case r.webhookPath:
		return r.Handler.Process([]byte(req.Body), req.Headers)
	case r.smsPath:
		form, err := url.ParseQuery(req.Body)
		if err != nil {
			r.logger.Warn("failed to parse sms form", slog.Any("error", err))
			return models.Response{Body: "invalid sms payload", StatusCode: http.StatusBadRequest}, err
		}
		return r.Handler.ProcessSMS(form, req.Headers)
	default:
		r.logger.Debug("rejecting request for unknown path...", slog.String("path", req.Path))
		return models.Response{Body: "not found", StatusCode: http.StatusNotFound}, nil
	}
}

// Lambda is the Lambda handler for the runtime.
func (r *Runtime) Lambda(_ context.Context, req events.APIGatewayV2HTTPRequest) (response any, err error) {
	r.logger.Info("received API Gateway request", slog.String("path", req.RawPath))

	body := req.Body
	if req.IsBase64Encoded {
		decoded, decodeErr := base64.StdEncoding.DecodeString(body)
		if decodeErr != nil {
			return nil, decodeErr
		}
		body = string(decoded)
	}

	// Lower-case incoming headers for compatibility purposes
	lch := make(map[string]string)
	for k, v := range req.Headers {
		lch[strings.ToLower(k)] = v
	}

	result, err := r.HandleEvent(models.Request{
		Path:    req.RawPath,
		Body:    body,
		Headers: lch,
	})

	switch r.lambdaPayloadType {
	case "api-gateway-v1":
		return events.APIGatewayProxyResponse{
			Body:       result.Body,
			StatusCode: result.StatusCode,
		}, err
	case "api-gateway-v2":
		return events.APIGatewayV2HTTPResponse{
			Body:       result.Body,
			StatusCode: result.StatusCode,
		}, err
	case "lambda-url":
		return events.LambdaFunctionURLResponse{
			Body:       result.Body,
			StatusCode: result.StatusCode,
		}, err
	default:
		return nil, fmt.Errorf("unsupported lambda payload type: %s", r.lambdaPayloadType)
	}
}

func (r *Runtime) allowPost(resp http.ResponseWriter, req *http.Request) bool {
	if req.Method != http.MethodPost {
		r.logger.Debug("rejecting HTTP request...", slog.Any("requestor", req.RemoteAddr), "reason", "method not allowed", slog.Any("method", req.Method))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusMethodNotAllowed}, nil, resp)
		return false
	}
	return true
}

func lowercaseHeaders(h http.Header) map[string]string {
	headers := make(map[string]string)
	for k, v := range h {
		// XXX: duplicated headers are collapsed to the first value
		headers[strings.ToLower(k)] = v[0]
	}
	return headers
}
