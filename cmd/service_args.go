package cmd

import (
	"time"

	"github.com/surfingcloud9/dakota-leads/internal/config"
	"github.com/surfingcloud9/dakota-leads/internal/helpers"
)

var svcEnvMapString = map[*string]boundEnvVar[string]{
	&config.Service.Addr: {
		Name:        "service-host-addr",
		Description: "The address to serve the service on (default all interfaces in dual-stack mode)",
		Short:       helpers.Ptr("H"),
	},
	&config.Service.Port: {
		Name:        "service-host-port",
		Description: "The port to serve the service on",
		Short:       helpers.Ptr("p"),
	},
	&config.Service.WebhookPath: {
		Name:        "service-webhook-path",
		Description: "The path serving the JSON webhook route",
	},
	&config.Service.SMSPath: {
		Name:        "service-sms-path",
		Description: "The path serving the form-encoded SMS route",
	},
	&config.Service.HealthPath: {
		Name:        "service-health-path",
		Description: "The path serving the health route",
	},
}

var svcEnvMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.Service.Timeout: {
		Name:        "service-io-timeout",
		Description: "The timeout for I/O operations",
		Short:       helpers.Ptr("t"),
	},
}
