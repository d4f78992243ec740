package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bookrec/internal/catalog"
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
	var (
		file     string
		dsn      string
		truncate bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy a dataset file into the catalog_books table",
		Long: `seed reads a dataset file, drops the records that fail catalog validation
and bulk copies the rest into catalog_books in file order.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if file != "" {
				cfg.DataFile = file
			}
			if dsn != "" {
				cfg.DSN = dsn
			}
			logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			ctx := cmd.Context()

			records, err := catalog.NewFileSource(cfg.DataFile).Records(ctx)
			if err != nil {
				return fmt.Errorf("read dataset: %w", err)
			}

			pool, err := pgdb.Open(ctx, cfg.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			s := &seeder{db: pool, logger: logger}
			n, err := s.Seed(ctx, records, truncate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d books from %s\n", n, cfg.DataFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "dataset file (default CATALOG_DATA_FILE)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "postgres DSN (default DB_DSN)")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "empty catalog_books before copying")
	return cmd
}
