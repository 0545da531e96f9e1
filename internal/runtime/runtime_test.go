package runtime_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/surfingcloud9/dakota-leads/internal/handler"
	"github.com/surfingcloud9/dakota-leads/internal/models"
	"github.com/surfingcloud9/dakota-leads/internal/runtime"
)

func newTestRuntime(t *testing.T, opts ...runtime.Option) *runtime.Runtime {
	t.Helper()
	hdl, err := handler.NewIntakeHandler()
	if err != nil {
		t.Fatalf("failed to create intake handler: %v", err)
	}
	return runtime.NewRuntime(hdl, opts...)
}

func TestServeWebhook_MethodNotAllowed(t *testing.T) {
	rtm := newTestRuntime(t)
	req := httptest.NewRequest(http.MethodGet, "/webhook", nil)
	rr := httptest.NewRecorder()

	rtm.ServeWebhook(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestServeWebhook(t *testing.T) {
	rtm := newTestRuntime(t)
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"event": "lead.created"}`))
	rr := httptest.NewRecorder()

	rtm.ServeWebhook(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Contains(t, rr.Body.String(), "received")
}

func TestServeSMS(t *testing.T) {
	rtm := newTestRuntime(t)
	form := "From=%2B15550100&To=%2B15550101&Body=call+me+back"
	req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()

	rtm.ServeSMS(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestServeHealth(t *testing.T) {
	rtm := newTestRuntime(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	rtm.ServeHealth(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestHandleEvent_Routing(t *testing.T) {
	rtm := newTestRuntime(t, runtime.WithRoutes("/hooks", "/texts", "/ping"))

	testCases := []struct {
		Name           string
		Request        models.Request
		ExpectedStatus int
	}{
		{
			Name:           "health",
			Request:        models.Request{Path: "/ping"},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "webhook",
			Request:        models.Request{Path: "/hooks", Body: `{"event": "lead.created"}`},
			ExpectedStatus: http.StatusAccepted,
		},
		{
			Name:           "sms",
			Request:        models.Request{Path: "/texts", Body: "From=%2B15550100&Body=hello"},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "unknown_path",
			Request:        models.Request{Path: "/other"},
			ExpectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			resp, _ := rtm.HandleEvent(tc.Request)
			assert.Equal(t, tc.ExpectedStatus, resp.StatusCode)
		})
	}
}

func TestLambda_PayloadTypes(t *testing.T) {
	req := events.APIGatewayV2HTTPRequest{RawPath: "/health"}

	t.Run("api_gateway_v1", func(t *testing.T) {
		rtm := newTestRuntime(t, runtime.WithLambdaPayloadType("api-gateway-v1"))
		resp, err := rtm.Lambda(context.Background(), req)
		assert.NoError(t, err)
		v1, ok := resp.(events.APIGatewayProxyResponse)
		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, v1.StatusCode)
	})

	t.Run("api_gateway_v2", func(t *testing.T) {
		rtm := newTestRuntime(t)
		resp, err := rtm.Lambda(context.Background(), req)
		assert.NoError(t, err)
		v2, ok := resp.(events.APIGatewayV2HTTPResponse)
		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, v2.StatusCode)
	})

	t.Run("lambda_url", func(t *testing.T) {
		rtm := newTestRuntime(t, runtime.WithLambdaPayloadType("lambda-url"))
		resp, err := rtm.Lambda(context.Background(), req)
		assert.NoError(t, err)
		u, ok := resp.(events.LambdaFunctionURLResponse)
		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, u.StatusCode)
	})

	t.Run("unsupported", func(t *testing.T) {
		rtm := newTestRuntime(t, runtime.WithLambdaPayloadType("api-gateway-v3"))
		_, err := rtm.Lambda(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestLambda_Base64Body(t *testing.T) {
	rtm := newTestRuntime(t)
	body := base64.StdEncoding.EncodeToString([]byte(`{"event": "lead.created"}`))

	resp, err := rtm.Lambda(context.Background(), events.APIGatewayV2HTTPRequest{
		RawPath:         "/webhook",
		Body:            body,
		IsBase64Encoded: true,
	})

	assert.NoError(t, err)
	v2, ok := resp.(events.APIGatewayV2HTTPResponse)
	assert.True(t, ok)
	assert.Equal(t, http.StatusAccepted, v2.StatusCode)
}
