package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/xw1nchester/countries-backend/internal/config"
	"github.com/xw1nchester/countries-backend/internal/country/cache"
	"github.com/xw1nchester/countries-backend/internal/country/db"
	"github.com/xw1nchester/countries-backend/internal/country/handler"
	"github.com/xw1nchester/countries-backend/internal/country/service"
	mysqlclient "github.com/xw1nchester/countries-backend/pkg/client/mysql"
	pgclient "github.com/xw1nchester/countries-backend/pkg/client/postgresql"
	redisclient "github.com/xw1nchester/countries-backend/pkg/client/redis"
	"github.com/xw1nchester/countries-backend/pkg/transactor"
	mysqltx "github.com/xw1nchester/countries-backend/pkg/transactor/mysql"
	pgtx "github.com/xw1nchester/countries-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	"github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/countries-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	log        *zap.Logger
	closers    []func() error
}

// @title		Countries API
// @version	1.0
// @BasePath	/api
func New(ctx context.Context, log *zap.Logger, cfg config.Config) (*App, error) {
	a := &App{log: log}

	repository, txManager, err := a.setupStorage(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	if cfg.Redis.Enabled {
		redisClient, err := redisclient.NewClient(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			a.close()
			return nil, err
		}
		a.closers = append(a.closers, redisClient.Close)

		repository = cacheRepository(repository, redisClient, cfg.Redis, log)

		log.Info("country cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	countryService := service.New(repository, txManager, log)

	router := chi.NewRouter()

	router.Use(
		RequestIDMiddleware,
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   cfg.AllowedMethods,
			AllowedHeaders:   cfg.AllowedHeaders,
			ExposedHeaders:   []string{RequestIDHeader},
			AllowCredentials: cfg.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		countryHandler := handler.New(countryService, log)

		log.Info("register country handlers")

		countryHandler.Register(r)
	})

	a.HTTPServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return a, nil
}

func (a *App) setupStorage(ctx context.Context, cfg config.Config) (service.Repository, transactor.Manager, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := pgclient.NewClient(ctx, pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
			MaxConns: cfg.PostgreSQL.MaxConns,
		})
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, closePool(pool))

		a.log.Info("connected to postgresql", zap.String("host", cfg.PostgreSQL.Host))

		return db.New(pool, a.log), pgtx.NewPgManager(pool), nil
	case config.DriverMySQL:
		conn, err := mysqlclient.NewClient(ctx, mysqlclient.Config{
			Username:        cfg.MySQL.Username,
			Password:        cfg.MySQL.Password,
			Host:            cfg.MySQL.Host,
			Port:            cfg.MySQL.Port,
			Database:        cfg.MySQL.Database,
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, conn.Close)

		a.log.Info("connected to mysql", zap.String("host", cfg.MySQL.Host))

		return db.NewMySQL(conn, a.log), mysqltx.NewSQLManager(conn), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}

func cacheRepository(next service.Repository, client *goredis.Client, cfg config.Redis, log *zap.Logger) service.Repository {
	return cache.New(next, client, cache.Options{TTL: cfg.TTL, OpTimeout: cfg.OpTimeout}, log)
}

func (a *App) MustRun() {
	a.log.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// releases storage connections.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	if a.HTTPServer != nil {
		err = a.HTTPServer.Shutdown(ctx)
	}

	a.close()

	return err
}

func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Error("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil
}

func closePool(pool *pgxpool.Pool) func() error {
	return func() error {
		pool.Close()
		return nil
	}
}

// @Tags		other
// @Success	200	{string}	string
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
