package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// WebhookEvent is the parsed body of an inbound webhook request: an opaque
// mapping from string keys to arbitrary values. It has no identity and no
// lifecycle beyond the request that carried it.
type WebhookEvent map[string]any

// ParseWebhookEvent parses body as a JSON object. Anything else (arrays,
// scalars, malformed or empty input) is rejected.
func ParseWebhookEvent(body []byte) (WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	if event == nil {
		// JSON null unmarshals into a nil map without error
		return nil, fmt.Errorf("payload is not a JSON object: null")
	}
	return event, nil
}

// Text returns the first non-empty string value among the candidate keys,
// in order. It is the subset of the event forwarded to the speech API.
func (e WebhookEvent) Text(keys []string) (string, bool) {
	for _, key := range keys {
		if v, found := e[key]; found {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s, true
			}
		}
	}
	return "", false
}

// SMSEvent is an inbound SMS notification delivered as a form-encoded
// webhook, in the shape Twilio posts it.
type SMSEvent struct {
	From string
	To   string
	Body string
}

// ParseSMSEvent validates and extracts an SMSEvent from form values.
// From and Body are mandatory.
func ParseSMSEvent(form url.Values) (*SMSEvent, error) {
	event := &SMSEvent{
		From: form.Get("From"),
		To:   form.Get("To"),
		Body: form.Get("Body"),
	}
	if event.From == "" {
		return nil, fmt.Errorf("missing form field: From")
	}
	if event.Body == "" {
		return nil, fmt.Errorf("missing form field: Body")
	}
	return event, nil
}
