// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"fjacquet/nexus-classifier/internal/config"
	"fjacquet/nexus-classifier/internal/container"
	"fjacquet/nexus-classifier/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	LogLevel string
}

var (
	// Version is set at build time with -ldflags "-X .../cmd/root.Version=..."
	Version = "dev"

	// Log is the shared logger instance for commands
	Log logging.Logger = logging.GetLogger()

	// AppConfig is the configuration loaded by the persistent pre-run
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "nexus-classifier",
		Short: "Classify legal-support messages into a fixed set of categories.",
		Long: `nexus-classifier classifies free-text legal-support messages (Processual, Financeiro,
Suporte Técnico, Comercial, Administrativo, Outros) with a language model, falling back
to a deterministic keyword engine whenever the model is unavailable, slow or unconfigured.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to nexus-classifier!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile := config.LoadEnv(); envFile != "" {
				Log.WithField("file", envFile).Debug("Loaded environment file")
			}

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if SharedFlags.LogLevel != "" {
				cfg.Log.Level = SharedFlags.LogLevel
			}
			AppConfig = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetDefault(Log)
			return nil
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	Cmd.Version = Version
}

// NewContainer wires the application from the loaded configuration.
func NewContainer(ctx context.Context) (*container.Container, error) {
	if AppConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return container.NewContainerWithLogger(ctx, AppConfig, Log)
}
