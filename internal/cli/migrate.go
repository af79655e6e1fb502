package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"kitchen-pos/internal/common/db"
)

func newMigrateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations to PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			log := newLogger(cmd, "pos-migrate", cfg)
			conn, err := db.Connect(cmd.Context(), cfg.DatabaseURL(), db.Options{MaxConns: cfg.Database.MaxConns, Retries: 5}, log)
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := conn.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
