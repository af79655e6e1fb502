package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"kitchen-pos/internal/app/pos"
	"kitchen-pos/internal/config"
	"kitchen-pos/internal/domain"
)

func newTablesCmd(root *rootOptions) *cobra.Command {
	var storage string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print table occupancy and grouping",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load(func(c *config.Config) {
				if cmd.Flags().Changed("storage") {
					c.Storage.Driver = storage
				}
			})
			if err != nil {
				return err
			}
			tx, closeStore, err := pos.OpenStore(cmd.Context(), cfg, newLogger(cmd, "pos-cli", cfg))
			if err != nil {
				return err
			}
			defer closeStore()

			var tables []domain.OrderTable
			err = tx.InTx(cmd.Context(), func(ctx context.Context, s domain.Store) error {
				tables, err = s.OrderTables().FindAll(ctx)
				return err
			})
			if err != nil {
				return err
			}
			renderTables(cmd.OutOrStdout(), tables)
			return nil
		},
	}
	cmd.Flags().StringVar(&storage, "storage", "postgres", "storage driver: postgres or memory")
	return cmd
}

func renderTables(w io.Writer, tables []domain.OrderTable) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Table", "Group", "Guests", "Empty"})
	for _, t := range tables {
		group := "-"
		if t.TableGroupID != nil {
			group = strconv.FormatInt(*t.TableGroupID, 10)
		}
		tw.Append([]string{
			strconv.FormatInt(t.ID, 10),
			group,
			strconv.Itoa(t.NumberOfGuests),
			strconv.FormatBool(t.Empty),
		})
	}
	tw.Render()
}
