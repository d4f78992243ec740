package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"bookrec/internal/config"
	"bookrec/internal/platform/logging"
	"bookrec/internal/platform/pgdb"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dsn, dir string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the catalog_books schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "postgres DSN (default DB_DSN)")
	root.PersistentFlags().StringVar(&dir, "dir", migrationsDir(), "migrations directory")

	withDB := func(fn func(ctx context.Context, m *migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dsn != "" {
				cfg.DSN = dsn
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

			pool, err := pgdb.Open(cmd.Context(), cfg.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			db := stdlib.OpenDBFromPool(pool)
			defer db.Close()

			return fn(cmd.Context(), &migrator{db: db, dir: dir, logger: logger})
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: withDB(func(ctx context.Context, m *migrator) error {
				return m.up(ctx)
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration",
			Args:  cobra.NoArgs,
			RunE: withDB(func(ctx context.Context, m *migrator) error {
				return m.down(ctx)
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the migration status",
			Args:  cobra.NoArgs,
			RunE: withDB(func(ctx context.Context, m *migrator) error {
				return m.status(ctx)
			}),
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a new SQL migration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := goose.Create(nil, dir, args[0], "sql"); err != nil {
					return fmt.Errorf("create migration: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Migration created: %s\n", args[0])
				return nil
			},
		},
	)
	return root
}
