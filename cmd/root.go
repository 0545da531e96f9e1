// Package cmd provides the entrypoint for the dakota-leads cli.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/surfingcloud9/dakota-leads/internal/config"
	"github.com/surfingcloud9/dakota-leads/internal/handler"
	"github.com/surfingcloud9/dakota-leads/internal/runtime"
)

var (
	configFilePath string
	logger         *slog.Logger
)

type boundEnvVar[T argType] struct {
	Name, Description string
	Env, Short        *string
	Hidden            bool
}

// New returns the root command for dakota-leads.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use: "dakota-leads",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			config.Global.Mode = strings.TrimSpace(config.Global.Mode)
			logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				AddSource: config.Global.Logging.CallerTrace,
				Level:     slog.LevelWarn - slog.Level(config.Global.Logging.Verbosity*4),
			})).With("mode", config.Global.Mode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch config.Global.Mode {
			case config.ModeService:
				return cmdService().RunE(cmd, args)
			case config.ModeLambda:
				return cmdLambda().RunE(cmd, args)
			default:
				return fmt.Errorf("invalid mode: %s", config.Global.Mode)
			}
		},
	}

	// Root command flags
	cmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "config.yaml", "path to the configuration file")

	// Configuration loading & defaults
	if err := errors.Join(
		config.LoadFromFile(configFilePath),
		config.SetDefaults(),
	); err != nil {
		panic(err)
	}

	// Dynamic flags
	setupDynamicFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		cmdLambda(),
		cmdService(),
	)

	return cmd
}

func setupDynamicFlags(cmd *cobra.Command) {
	viper.AutomaticEnv()
	viper.EnvKeyReplacer(replacer)

	bindEnvMap(cmd, envMapString)
	bindEnvMap(cmd, envMapBool)
	bindEnvMap(cmd, envMapCount)
	bindEnvMap(cmd, envMapStringSlice)
	bindEnvMap(cmd, envMapDuration)
}

// setup builds the intake handler and runtime shared by the service and lambda modes.
func setup(cmd *cobra.Command) (*runtime.Runtime, error) {
	logger.Debug("creating intake handler...")
	hdl, err := handler.NewIntakeHandler(
		handler.WithSharedSecret(config.Webhook.SharedSecret, config.Webhook.SecretHeader),
		handler.WithSpeechSynthesis(config.Speech.Enabled),
		handler.WithAuthMode(config.Speech.AuthMode),
		handler.WithSSMKey(config.Speech.SSMKey),
		handler.WithAPIKey(os.Getenv("SPEECH_API_KEY")),
		handler.WithSpeechAPI(config.Speech.BaseURL, config.Speech.VoiceID, config.Speech.ModelID),
		handler.WithSpeechTimeout(config.Speech.Timeout),
		handler.WithTextKeys(config.Speech.TextKeys),
		handler.WithContext(cmd.Context()),
		handler.WithLogger(logger.With("component", "intake-handler")))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create intake handler")
	}

	logger.Debug("creating runtime...")
	return runtime.NewRuntime(hdl,
		runtime.WithRoutes(config.Service.WebhookPath, config.Service.SMSPath, config.Service.HealthPath),
		runtime.WithLambdaPayloadType(config.Lambda.PayloadType),
		runtime.WithLogger(logger.With("component", "runtime"))), nil
}
