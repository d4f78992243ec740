package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"bookrec/internal/catalog"
	"bookrec/internal/config"
	"bookrec/internal/platform/logging"
	"bookrec/internal/platform/pgdb"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    *config.Config
	output string
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	catalog *catalog.Catalog
	cleanup func()
}

func newApp(cfg *config.Config, stdout, stderr io.Writer) *app {
	return &app{cfg: cfg, stdout: stdout, stderr: stderr, cleanup: func() {}}
}

// execute runs the command line in args. Resources opened by the command
// are released whether it succeeds or not.
func (a *app) execute(ctx context.Context, args []string) error {
	defer a.close()
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (a *app) close() {
	a.cleanup()
	a.cleanup = func() {}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookcatalog",
		Short: "Query the in-memory book catalog used to seed recommendations",
		Long: `bookcatalog loads the book catalog once from a dataset file or the
catalog_books Postgres table and answers lookups against it.

If the source cannot be read, a small built-in set of books is used instead.

Examples:
  bookcatalog list
  bookcatalog title midnight
  bookcatalog genre science_fiction -o json
  bookcatalog --source postgres report`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if err := validateOutput(a.output); err != nil {
				return err
			}
			a.logger = logging.New(a.cfg.LogLevel, a.cfg.LogFormat, a.stderr)
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Source, "source", a.cfg.Source, "catalog source: file or postgres")
	flags.StringVar(&a.cfg.DataFile, "file", a.cfg.DataFile, "dataset file for the file source (.json, .yaml)")
	flags.StringVar(&a.cfg.DSN, "dsn", a.cfg.DSN, "postgres DSN for the postgres source")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVarP(&a.output, "output", "o", outputTable, "output format: table, json or yaml")

	root.AddCommand(
		newListCmd(a),
		newISBNCmd(a),
		newTitleCmd(a),
		newAuthorCmd(a),
		newGenreCmd(a),
		newGenresCmd(a),
		newReportCmd(a),
		newHistoryCmd(a),
		newFetchCmd(a),
	)
	return root
}

// openCatalog loads the catalog from the configured source. It never fails:
// an unreachable database degrades to the fallback books like any other
// unreadable source.
func (a *app) openCatalog(ctx context.Context) *catalog.Catalog {
	if a.catalog != nil {
		return a.catalog
	}

	var src catalog.Source
	switch a.cfg.Source {
	case config.SourcePostgres:
		pool, err := pgdb.Open(ctx, a.cfg.DSN)
		if err != nil {
			a.logger.Error("postgres source unavailable", "dsn", pgdb.RedactDSN(a.cfg.DSN), "error", err)
			break
		}
		a.cleanup = pool.Close
		src = catalog.NewPostgresSource(pool)
	default:
		src = catalog.NewFileSource(a.cfg.DataFile)
	}

	a.catalog = catalog.New(ctx, src, a.logger)
	return a.catalog
}
