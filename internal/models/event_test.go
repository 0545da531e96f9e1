package models_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/surfingcloud9/dakota-leads/internal/models"
)

func TestParseWebhookEvent(t *testing.T) {
	testCases := []struct {
		Name        string
		Body        string
		ExpectError bool
	}{
		{Name: "valid_object", Body: `{"event": "lead.created", "text": "hello"}`},
		{Name: "valid_empty_object", Body: `{}`},
		{Name: "empty_body", Body: "", ExpectError: true},
		{Name: "null", Body: `null`, ExpectError: true},
		{Name: "array", Body: `[1, 2, 3]`, ExpectError: true},
		{Name: "scalar", Body: `"hello"`, ExpectError: true},
		{Name: "truncated", Body: `{"event":`, ExpectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := models.ParseWebhookEvent([]byte(tc.Body))
			if tc.ExpectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWebhookEvent_Text(t *testing.T) {
	keys := []string{"text", "message"}
	testCases := []struct {
		Name     string
		Event    models.WebhookEvent
		Expected string
		Found    bool
	}{
		{
			Name:     "first_key_wins",
			Event:    models.WebhookEvent{"text": "one", "message": "two"},
			Expected: "one",
			Found:    true,
		},
		{
			Name:     "fallback_key",
			Event:    models.WebhookEvent{"message": "two"},
			Expected: "two",
			Found:    true,
		},
		{
			Name:  "non_string_value",
			Event: models.WebhookEvent{"text": 42},
		},
		{
			Name:  "blank_value",
			Event: models.WebhookEvent{"text": "   "},
		},
		{
			Name:  "no_candidate_keys",
			Event: models.WebhookEvent{"other": "value"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			text, found := tc.Event.Text(keys)
			assert.Equal(t, tc.Found, found)
			assert.Equal(t, tc.Expected, text)
		})
	}
}

func TestParseSMSEvent(t *testing.T) {
	testCases := []struct {
		Name        string
		Form        url.Values
		ExpectError bool
	}{
		{
			Name: "valid",
			Form: url.Values{"From": {"+15550100"}, "To": {"+15550101"}, "Body": {"hello"}},
		},
		{
			Name: "valid_without_to",
			Form: url.Values{"From": {"+15550100"}, "Body": {"hello"}},
		},
		{
			Name:        "missing_from",
			Form:        url.Values{"Body": {"hello"}},
			ExpectError: true,
		},
		{
			Name:        "missing_body",
			Form:        url.Values{"From": {"+15550100"}},
			ExpectError: true,
		},
		{
			Name:        "empty_form",
			Form:        url.Values{},
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			event, err := models.ParseSMSEvent(tc.Form)
			if tc.ExpectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Form.Get("From"), event.From)
			assert.Equal(t, tc.Form.Get("Body"), event.Body)
		})
	}
}
