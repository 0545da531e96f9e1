package cmd

import (
	"time"

	"github.com/surfingcloud9/dakota-leads/internal/config"
	"github.com/surfingcloud9/dakota-leads/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'service' and 'lambda'",
		Short:       helpers.Ptr("m"),
	},
	&config.Webhook.SharedSecret: {
		Name:        "webhook-shared-secret",
		Description: "The shared secret expected on inbound webhook requests. If not specified, no validation is performed",
		Env:         helpers.Ptr("WEBHOOK_SHARED_SECRET"),
	},
	&config.Webhook.SecretHeader: {
		Name:        "webhook-secret-header",
		Description: "The request header carrying the shared secret",
	},
	&config.Speech.AuthMode: {
		Name:        "speech-auth-mode",
		Description: "Speech API credentials provider. Supported values are 'env' and 'ssm'.",
		Short:       helpers.Ptr("A"),
	},
	&config.Speech.SSMKey: {
		Name:        "speech-api-key-ssm-parameter",
		Description: "The SSM parameter to use when fetching the speech API key",
	},
	&config.Speech.BaseURL: {
		Name:        "speech-base-url",
		Description: "The voice-synthesis API endpoint",
	},
	&config.Speech.VoiceID: {
		Name:        "speech-voice-id",
		Description: "The voice to use for synthesis",
	},
	&config.Speech.ModelID: {
		Name:        "speech-model-id",
		Description: "The synthesis model",
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Speech.Enabled: {
		Name:        "speech-synthesis",
		Description: "Enable the outbound voice-synthesis call for received events",
		Env:         helpers.Ptr("SPEECH_SYNTHESIS"),
	},
}

var envMapCount = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default WarnLevel)",
		Short:       helpers.Ptr("v"),
	},
}

var envMapStringSlice = map[*[]string]boundEnvVar[[]string]{
	&config.Speech.TextKeys: {
		Name:        "speech-text-keys",
		Description: "The payload fields inspected, in order, for the text to synthesize",
	},
}

var envMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Speech.Timeout: {
		Name:        "speech-timeout",
		Description: "The timeout bounding each outbound synthesis call",
	},
}
