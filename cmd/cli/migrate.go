package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"table-booking/internal/infra/db"
	"table-booking/internal/pkg/config"
	"table-booking/migrations"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			// only the DB section is needed; the server's required settings may be absent here
			var cfg config.DBConfig
			if err := envconfig.Process("", &cfg); err != nil {
				return fmt.Errorf("failed to process env config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			pool, cleanup, err := db.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			applied, err := db.Migrate(ctx, pool, migrations.FS)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			return nil
		},
	}
}
