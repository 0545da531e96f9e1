package cmd

import (
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/surfingcloud9/dakota-leads/internal/config"
)

func cmdService() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Aliases: []string{"s", "serve", "standalone", "server"},
		PreRunE: func(_ *cobra.Command, _ []string) error {
			logger = logger.With("mode", "service")
			logger.Info("Spawning...")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd)
			if err != nil {
				return errors.Wrap(err, "failed to setup service")
			}

			logger.Debug("Creating HTTP server...")
			h := http.NewServeMux()
			h.HandleFunc(config.Service.HealthPath, rt.ServeHealth)
			h.HandleFunc(config.Service.WebhookPath, rt.ServeWebhook)
			h.HandleFunc(config.Service.SMSPath, rt.ServeSMS)

			s := &http.Server{
				Handler:      h,
				Addr:         net.JoinHostPort(config.Service.Addr, config.Service.Port),
				WriteTimeout: config.Service.Timeout,
				ReadTimeout:  config.Service.Timeout,
				IdleTimeout:  config.Service.Timeout,
			}

			logger.Info("Serving...",
				"address", s.Addr,
				"webhookPath", config.Service.WebhookPath,
				"smsPath", config.Service.SMSPath,
				"timeout", config.Service.Timeout.String())
			return s.ListenAndServe()
		},
	}

	bindEnvMap(cmd, svcEnvMapString)
	bindEnvMap(cmd, svcEnvMapDuration)

	return cmd
}
