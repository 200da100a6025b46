// Package app собирает сервис из компонентов через fx.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"marketplace/db"
	"marketplace/db/migrations"
	"marketplace/internal/config"
	"marketplace/internal/handlers"
	"marketplace/internal/logger"
	"marketplace/internal/metrics"
	"marketplace/internal/seed"
	"marketplace/models"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module - весь граф зависимостей сервиса
var Module = fx.Options(
	fx.Provide(
		config.Load,
		newLogger,
		newDB,
		prometheus.NewRegistry,
		newCollector,
		db.NewUserTable,
		db.NewOrderTable,
		db.NewOfferTable,
		newHandler,
		newRouter,
		newServer,
	),
	// Порядок важен: схема и сид-данные до старта HTTP-сервера
	fx.Invoke(initSchema, startServer),
)

// New создает приложение с логированием событий fx через zap
func New(opts ...fx.Option) *fx.App {
	return fx.New(
		Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.StartTimeout(time.Minute),
		fx.Options(opts...),
	)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func newDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := db.Connect(ctx, cfg.PostgresConn)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return conn.Close() },
	})
	return conn, nil
}

func newCollector(reg *prometheus.Registry) *metrics.Collector {
	return metrics.NewCollector(reg)
}

func newHandler(users *db.Table[models.User], orders *db.Table[models.Order], offers *db.Table[models.Offer], log *zap.Logger) *handlers.Handler {
	return handlers.NewHandler(users, orders, offers, log)
}

func newServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

type schemaParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	DB        *sqlx.DB
	Log       *zap.Logger
	Metrics   *metrics.Collector
	Users     *db.Table[models.User]
	Offers    *db.Table[models.Offer]
	Orders    *db.Table[models.Order]
}

// initSchema при старте пересоздает схему и грузит сид-данные (DB_RESET=true)
// либо только догоняет миграции без сида.
func initSchema(p schemaParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			migrator, err := migrations.New(p.DB.DB, p.Log)
			if err != nil {
				return err
			}
			loader := seed.NewLoader(p.Users, p.Offers, p.Orders, p.Log, p.Metrics)
			return prepareSchema(ctx, p.Config, migrator, loader, p.Log)
		},
	})
}

type schemaMigrator interface {
	Up(ctx context.Context) error
	Recreate(ctx context.Context) error
}

type batchLoader interface {
	Load(ctx context.Context, b *seed.Batch) error
}

func prepareSchema(ctx context.Context, cfg *config.Config, m schemaMigrator, l batchLoader, log *zap.Logger) error {
	if !cfg.ResetOnStart {
		log.Info("DB_RESET is off, applying migrations without seed data")
		return m.Up(ctx)
	}

	// Сид проверяем до удаления таблиц: битый файл не должен стереть данные
	batch, err := buildSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	if err := m.Recreate(ctx); err != nil {
		return err
	}
	return l.Load(ctx, batch)
}

func buildSeed(path string) (*seed.Batch, error) {
	var (
		ds  *seed.Dataset
		err error
	)
	if path == "" {
		ds, err = seed.Default()
	} else {
		ds, err = seed.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}

	batch, err := ds.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}
	return batch, nil
}

func startServer(lc fx.Lifecycle, srv *http.Server, cfg *config.Config, log *zap.Logger, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("cannot listen on %s: %w", srv.Addr, err)
			}
			log.Info("starting server", zap.String("addr", srv.Addr))

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
					shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			log.Info("shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}
