package speech_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/surfingcloud9/dakota-leads/internal/controllers/speech"
)

func newTestController(t *testing.T, baseURL string, timeout time.Duration) *speech.Controller {
	t.Helper()
	ctl, err := speech.NewController(
		speech.WithAuthMode("env"),
		speech.WithAPIKey("test-key"),
		speech.WithBaseURL(baseURL),
		speech.WithVoice("test-voice", "test-model"),
		speech.WithTimeout(timeout))
	if err != nil {
		t.Fatalf("failed to create speech controller: %v", err)
	}
	return ctl
}

func TestSynthesize(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get(speech.APIKeyHeader)
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	ctl := newTestController(t, srv.URL, 2*time.Second)
	assert.NoError(t, ctl.RetrieveCredentials())
	assert.NoError(t, ctl.Synthesize(context.Background(), "hello world"))

	assert.Equal(t, "/v1/text-to-speech/test-voice", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "hello world", gotBody["text"])
	assert.Equal(t, "test-model", gotBody["model_id"])
}

func TestSynthesize_RejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	ctl := newTestController(t, srv.URL, 2*time.Second)
	err := ctl.Synthesize(context.Background(), "hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestSynthesize_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctl := newTestController(t, srv.URL, 50*time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, ctl.Timeout())
	assert.Error(t, ctl.Synthesize(context.Background(), "hello"))
}

func TestNewController_DefaultTimeout(t *testing.T) {
	ctl, err := speech.NewController(
		speech.WithAuthMode("env"),
		speech.WithBaseURL("https://synthesis.invalid"))
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Second, ctl.Timeout())
}

func TestRetrieveCredentials(t *testing.T) {
	testCases := []struct {
		Name        string
		AuthMode    string
		APIKey      string
		ExpectError bool
	}{
		{Name: "env_with_key", AuthMode: "env", APIKey: "test-key"},
		{Name: "env_missing_key", AuthMode: "env", ExpectError: true},
		{Name: "ssm_missing_parameter", AuthMode: "ssm", ExpectError: true},
		{Name: "unsupported_mode", AuthMode: "vault", APIKey: "test-key", ExpectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctl, err := speech.NewController(
				speech.WithAuthMode(tc.AuthMode),
				speech.WithAPIKey(tc.APIKey),
				speech.WithBaseURL("https://synthesis.invalid"))
			if err != nil {
				t.Fatalf("failed to create speech controller: %v", err)
			}
			if err := ctl.RetrieveCredentials(); (err != nil) != tc.ExpectError {
				t.Errorf("Controller.RetrieveCredentials() error = %v, expectError %v", err, tc.ExpectError)
			}
		})
	}
}

func TestNewController_MissingBaseURL(t *testing.T) {
	_, err := speech.NewController(speech.WithAuthMode("env"))
	assert.Error(t, err)
}
