package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tuyendunghub/job-board/internal/api"
	"github.com/tuyendunghub/job-board/internal/config"
	"github.com/tuyendunghub/job-board/internal/logger"
	"github.com/tuyendunghub/job-board/internal/metrics"
	"github.com/tuyendunghub/job-board/internal/repositories"
	"github.com/tuyendunghub/job-board/internal/services"
	"github.com/tuyendunghub/job-board/pkg/jwt"
	"github.com/tuyendunghub/job-board/pkg/password"
)

func seedDefaultAdmin(ctx context.Context, cfg config.AuthConfig, admins *repositories.Admins, hasher *password.Hasher) error {

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return err
	}

	return admins.EnsureDefault(ctx, cfg.AdminUsername, hash, cfg.AdminEmail)
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	hasher := password.NewHasher()
	admins := repositories.NewAdminsRepository(dbContext.DB)
	jobs := repositories.NewJobsRepository(dbContext.DB)

	if err = seedDefaultAdmin(ctx, cfg.Auth, admins, hasher); err != nil {
		log.Fatalf("can't seed default admin: %v", err)
	}

	tokens := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	statsService := services.NewStatsService(jobs)
	jobService := services.NewJobService(jobs, statsService)
	authService := services.NewAuthService(admins, tokens, hasher)

	router := api.NewRouter(api.RouterConfig{
		Auth:        authService,
		Jobs:        jobService,
		Stats:       statsService,
		Tokens:      tokens,
		CorsOrigins: cfg.Server.CorsOriginList(),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Infof("server listening on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown failed: %v", err)
	}
	log.Info("Server stopped.")
}
