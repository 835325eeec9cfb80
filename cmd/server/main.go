package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"todolist/internal/app/server/api"
	"todolist/internal/config"
	"todolist/internal/domain/session"
	"todolist/internal/infrastructure/migration"
	"todolist/internal/infrastructure/storage"
	"todolist/internal/infrastructure/storage/postgres"
	"todolist/internal/infrastructure/storage/sqlite"
	"todolist/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)
	api.UseEnvelopeErrors()

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, deps, err := openStorage(ctx, conf, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("close storage", "error", err)
		}
	}()

	if conf.Auth.FallbackSecret {
		log.Warn("JWT_SECRET is not set, signing tokens with the built-in local secret", "env", conf.Env)
	}
	deps.Session = session.NewService(conf.Auth.Secret, conf.Auth.TokenTTL, log)

	srv := &http.Server{
		Addr:         conf.Server.RunAddress,
		Handler:      api.New(deps, log),
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env, "db", conf.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// openStorage открывает выбранный бэкенд, накатывает миграции и
// возвращает репозитории для роутера.
func openStorage(ctx context.Context, conf *config.Config, log *slog.Logger) (storage.Storage, api.Deps, error) {
	switch conf.DB.Driver {
	case config.DriverSQLite:
		st, err := sqlite.New(ctx, conf.DB.DatabaseURI)
		if err != nil {
			return nil, api.Deps{}, err
		}
		if err := migration.NewMigration(migration.SQLiteEngine(st.DB()), log).Up(); err != nil {
			_ = st.Close()
			return nil, api.Deps{}, err
		}
		return st, api.Deps{
			DB:    st,
			Users: sqlite.NewUserRepository(st.DB(), log),
			Items: sqlite.NewItemRepository(st.DB(), log),
		}, nil
	default:
		if err := migration.NewMigration(migration.PostgresEngine(conf.DB.DatabaseURI), log).Up(); err != nil {
			return nil, api.Deps{}, err
		}
		st, err := postgres.New(ctx, conf.DB.DatabaseURI)
		if err != nil {
			return nil, api.Deps{}, err
		}
		return st, api.Deps{
			DB:    st,
			Users: postgres.NewUserRepository(st.Pool(), log),
			Items: postgres.NewItemRepository(st.Pool(), log),
		}, nil
	}
}
