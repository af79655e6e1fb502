package cli

import (
	"context"

	"github.com/spf13/cobra"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "kitchen-pos",
		Short:         "Restaurant point-of-sale back end",
		Long:          "kitchen-pos serves the menu, order and table API of a restaurant and relays its events over RabbitMQ.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newNotifierCmd(opts))
	cmd.AddCommand(newTablesCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func (o *rootOptions) load(overrides ...func(*config.Config)) (*config.Config, error) {
	return config.Load(o.configPath, overrides...)
}

func newLogger(cmd *cobra.Command, service string, cfg *config.Config) *logger.Logger {
	return logger.New(service, logger.WithOutput(cmd.ErrOrStderr()), logger.WithLevel(cfg.Log.Level))
}
