package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"
)

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}

type migrator struct {
	db     *sql.DB
	dir    string
	logger *slog.Logger
}

func (m *migrator) init() error {
	goose.SetBaseFS(nil)
	goose.SetLogger(slogGooseLogger{m.logger})
	return goose.SetDialect("postgres")
}

func (m *migrator) up(ctx context.Context) error {
	if err := m.init(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	m.logger.Info("migrations applied", "dir", m.dir)
	return nil
}

func (m *migrator) down(ctx context.Context) error {
	if err := m.init(); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("roll back migration: %w", err)
	}
	m.logger.Info("migration rolled back", "dir", m.dir)
	return nil
}

func (m *migrator) status(ctx context.Context) error {
	if err := m.init(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, m.db, m.dir); err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	return nil
}

// slogGooseLogger routes goose output through slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l slogGooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l slogGooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
