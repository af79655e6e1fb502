package cli

import (
	"github.com/spf13/cobra"

	"kitchen-pos/internal/app/notify"
)

func newNotifierCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "notifier",
		Short: "Consume POS events from RabbitMQ and log them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return notify.Run(cmd.Context(), cfg, newLogger(cmd, "pos-notifier", cfg))
		},
	}
}
