// Package app wires configuration, storage, services, and transport into
// a running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres"
	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres/masterrow"
	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres/pair"
	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres/rowword"
	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres/user"
	authjwt "github.com/vncorpora/bicorpus-backend/internal/auth"
	"github.com/vncorpora/bicorpus-backend/internal/config"
	"github.com/vncorpora/bicorpus-backend/internal/service/auth"
	"github.com/vncorpora/bicorpus-backend/internal/service/curation"
	"github.com/vncorpora/bicorpus-backend/internal/service/ingest"
	"github.com/vncorpora/bicorpus-backend/internal/service/query"
	"github.com/vncorpora/bicorpus-backend/internal/transport/middleware"
	"github.com/vncorpora/bicorpus-backend/internal/transport/rest"
	"github.com/vncorpora/bicorpus-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	userRepo := user.New(pool)
	draftRepo := rowword.New(pool)
	masterRepo := masterrow.New(pool)
	pairRepo := pair.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := auth.NewService(logger, userRepo, jwtManager, cfg.Auth)
	querySvc := query.NewService(logger, draftRepo, masterRepo)
	curationSvc := curation.NewService(logger, pairRepo, draftRepo, masterRepo, txManager)
	ingestSvc := ingest.NewService(logger, cfg.Corpus, draftRepo, masterRepo)

	router := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Auth:   rest.NewAuthHandler(authSvc, logger),
		Corpus: rest.NewCorpusHandler(querySvc, logger),
		Pairs:  rest.NewPairsHandler(curationSvc, logger),
		Ingest: rest.NewIngestHandler(ingestSvc, logger),
	},
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
