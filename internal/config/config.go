// Package config provides a centralized entrypoint for the application parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Runtime modes.
const (
	ModeService = "service"
	ModeLambda  = "lambda"
)

var (
	// Global is a struct that contains the global configuration.
	Global global
	// Webhook is a struct that contains the inbound webhook configuration.
	Webhook webhook
	// Speech is a struct that contains the configuration for the voice-synthesis side effect.
	Speech speech
	// Service is a struct that contains the configuration for the service mode.
	Service service
	// Lambda is a struct that contains the configuration for the lambda mode.
	Lambda lambda
)

type global struct {
	// Mode is the runtime mode of the application.
	Mode string `yaml:"mode,omitempty" default:"service"`
	// Logging is a struct that contains the logging configuration.
	Logging struct {
		// Verbosity is the verbosity level of the application. It represents slog levels.
		Verbosity int `yaml:"verbosity,omitempty"`
		// CallerTrace is a flag that enables the caller trace in the logger.
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type webhook struct {
	// SharedSecret is the token expected on inbound requests. Empty disables validation.
	SharedSecret string `yaml:"sharedSecret,omitempty"`
	// SecretHeader is the request header carrying the shared secret.
	SecretHeader string `yaml:"secretHeader,omitempty" default:"x-webhook-token"`
}

type speech struct {
	// Enabled toggles the outbound text-to-speech call.
	Enabled bool `yaml:"enabled,omitempty"`
	// AuthMode selects the API-key source. Supported values are 'env' and 'ssm'.
	AuthMode string `yaml:"authMode,omitempty" default:"env"`
	// SSMKey is the SSM parameter holding the API key when AuthMode is 'ssm'.
	SSMKey string `yaml:"ssmKey,omitempty"`
	// BaseURL is the voice-synthesis API endpoint.
	BaseURL string `yaml:"baseURL,omitempty" default:"https://api.elevenlabs.io"`
	// VoiceID is the voice used for synthesis.
	VoiceID string `yaml:"voiceID,omitempty" default:"21m00Tcm4TlvDq8ikWAM"`
	// ModelID is the synthesis model.
	ModelID string `yaml:"modelID,omitempty" default:"eleven_multilingual_v2"`
	// TextKeys are the payload fields inspected, in order, for the text to synthesize.
	TextKeys []string `yaml:"textKeys,omitempty" default:"[\"text\", \"message\", \"body\"]"`
	// Timeout bounds each outbound synthesis call.
	Timeout time.Duration `yaml:"timeout,omitempty" default:"10s"`
}

type service struct {
	Addr        string        `yaml:"addr,omitempty"`
	Port        string        `yaml:"port,omitempty" default:"8080"`
	WebhookPath string        `yaml:"webhookPath,omitempty" default:"/webhook"`
	SMSPath     string        `yaml:"smsPath,omitempty" default:"/sms"`
	HealthPath  string        `yaml:"healthPath,omitempty" default:"/health"`
	Timeout     time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v2"`
}

// SetDefaults sets the default values for the configuration.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Webhook),
		defaults.Set(&Speech),
		defaults.Set(&Service),
		defaults.Set(&Lambda),
	)
}

// LoadFromFile loads the configuration from a file.
func LoadFromFile(path string) error {
	if len(path) == 0 {
		return nil
	}
	fstat, err := os.Stat(path)
	if err != nil {
		return nil //nolint:nilerr // If the file does not exist, we ignore it.
	}
	if fstat.IsDir() {
		return fmt.Errorf("configuration file %s is a directory", path)
	}
	if !fstat.Mode().IsRegular() {
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	type all struct {
		Global  global  `yaml:"global,omitempty"`
		Webhook webhook `yaml:"webhook,omitempty"`
		Speech  speech  `yaml:"speech,omitempty"`
		Service service `yaml:"service,omitempty"`
		Lambda  lambda  `yaml:"lambda,omitempty"`
	}
	var a all
	if err = yaml.Unmarshal(content, &a); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global = a.Global
	Webhook = a.Webhook
	Speech = a.Speech
	Service = a.Service
	Lambda = a.Lambda

	return nil
}
