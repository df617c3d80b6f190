package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opsdesk/opsdesk-backend/api"
	"github.com/opsdesk/opsdesk-backend/infra"
	"github.com/opsdesk/opsdesk-backend/repositories"
	"github.com/opsdesk/opsdesk-backend/usecases"
	"github.com/opsdesk/opsdesk-backend/usecases/executor_factory"
	"github.com/opsdesk/opsdesk-backend/utils"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the http server")
	flag.Parse()

	env := utils.GetStringEnv("ENV", "development")
	logger := utils.NewLogger(env)

	pgPassword := utils.GetStringEnv("PG_PASSWORD", "postgres")
	if env == "production" {
		pgPassword = utils.GetRequiredStringEnv("PG_PASSWORD")
	}
	pgConfig := utils.PGConfig{
		Hostname:         utils.GetStringEnv("PG_HOSTNAME", "localhost"),
		Port:             utils.GetStringEnv("PG_PORT", "5432"),
		User:             utils.GetStringEnv("PG_USER", "postgres"),
		Password:         pgPassword,
		Database:         utils.GetStringEnv("PG_DATABASE", "opsdesk"),
		ConnectionString: utils.GetStringEnv("PG_CONNECTION_STRING", ""),
	}

	// RUN_MIGRATIONS covers container deployments where flags are awkward
	if *shouldRunMigrations || utils.GetBoolEnv("RUN_MIGRATIONS", false) {
		if err := repositories.RunMigrations(pgConfig, logger); err != nil {
			logger.Error("failed to run migrations", "error", err.Error())
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	if *shouldRunServer {
		if err := runServer(env, pgConfig, logger); err != nil {
			logger.Error("server stopped with an error", "error", err.Error())
			os.Exit(1)
		}
	}
}

func runServer(env string, pgConfig utils.PGConfig, logger *slog.Logger) error {
	pool, err := infra.NewPostgresConnectionPool(pgConfig.GetConnectionString())
	if err != nil {
		return err
	}
	defer pool.Close()

	executorGetter := repositories.NewExecutorGetter(pool)
	uc := usecases.NewUsecases(
		executor_factory.NewDbExecutorFactory(executorGetter),
		repositories.NewOpsDbRepository(),
	)

	server := api.New(api.Configuration{
		Env:     env,
		Port:    utils.GetStringEnv("PORT", "8080"),
		Timeout: time.Duration(utils.GetIntEnv("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
	}, uc, logger)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	logger.Info("server listening", "addr", server.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
