package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationDir = "sql"

// Migrator управляет схемой БД через goose
type Migrator struct {
	db  *sql.DB
	log *zap.Logger
}

// New настраивает goose на встроенные миграции
func New(db *sql.DB, log *zap.Logger) (*Migrator, error) {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}
	return &Migrator{db: db, log: log}, nil
}

// Up применяет все миграции
func (m *Migrator) Up(ctx context.Context) error {
	m.log.Info("running migrations", zap.String("dir", migrationDir))
	if err := goose.UpContext(ctx, m.db, migrationDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Recreate удаляет все таблицы и создает их заново. Все данные теряются.
func (m *Migrator) Recreate(ctx context.Context) error {
	m.log.Warn("resetting database schema, all data will be lost")
	if err := goose.ResetContext(ctx, m.db, migrationDir); err != nil {
		return fmt.Errorf("failed to reset migrations: %w", err)
	}
	return m.Up(ctx)
}

// gooseLogger пишет вывод goose в zap
type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) { l.s.Infof(format, v...) }
func (l gooseLogger) Fatalf(format string, v ...any) { l.s.Fatalf(format, v...) }
