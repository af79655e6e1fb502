package cli

import (
	"github.com/spf13/cobra"

	"kitchen-pos/internal/app/pos"
	"kitchen-pos/internal/config"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		port    int
		storage string
		events  bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the POS HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(func(c *config.Config) {
				if cmd.Flags().Changed("port") {
					c.HTTP.Port = port
				}
				if cmd.Flags().Changed("storage") {
					c.Storage.Driver = storage
				}
				if cmd.Flags().Changed("events") {
					c.RabbitMQ.Enabled = events
				}
			})
			if err != nil {
				return err
			}
			return pos.Run(cmd.Context(), cfg, newLogger(cmd, "pos-api", cfg))
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP listen port")
	cmd.Flags().StringVar(&storage, "storage", "postgres", "storage driver: postgres or memory")
	cmd.Flags().BoolVar(&events, "events", false, "publish domain events to RabbitMQ")
	return cmd
}
