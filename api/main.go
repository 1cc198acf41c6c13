package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infocomm/inventory-backend/internal/auth"
	"github.com/infocomm/inventory-backend/internal/cache"
	"github.com/infocomm/inventory-backend/internal/config"
	"github.com/infocomm/inventory-backend/internal/db"
	"github.com/infocomm/inventory-backend/internal/http/handlers"
	rl "github.com/infocomm/inventory-backend/internal/http/rate_limiter"
	"github.com/infocomm/inventory-backend/internal/http/router"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/notify"
	"github.com/infocomm/inventory-backend/internal/redissvc"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/service"
	"github.com/infocomm/inventory-backend/internal/validation"
)

// @title InfoComm Inventory API
// @version 1.0
// @description REST API for products, reference data and low-stock alerts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewSlogLogger("error").Errorf(err, "could not load configuration")
		os.Exit(1)
	}
	log := logger.NewSlogLogger(cfg.Log.Level)

	if err := run(cfg, log); err != nil {
		log.Errorf(err, "server stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg.Database, log); err != nil {
			return err
		}
	}

	var (
		productCache cache.ProductCache = cache.NopProductCache{}
		revoker      auth.Revoker       = auth.NewMemoryRevoker()
	)
	if cfg.Redis.Enabled {
		rs, err := redissvc.NewRedisService(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()
		productCache = cache.NewRedisProductCache(rs, cfg.Redis.ProductTTL, log)
		revoker = auth.NewRedisRevoker(rs)
		log.Infof("redis cache enabled at %s", cfg.Redis.Addr)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	mailer := wire(ctx, cfg, database, productCache, tokens, revoker, log)

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)

	srv := &http.Server{
		Addr: ":" + cfg.HTTP.Port,
		Handler: router.NewRouter(router.Deps{
			Tokens:  tokens,
			Revoker: revoker,
			Limiter: limiter,
			Logger:  log,
		}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("server running on %s", srv.Addr)
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

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	if mailer != nil {
		mailer.Wait()
	}
	return err
}

// wire builds the repositories and services and hands them to the handlers.
// The returned mailer is nil when SMTP is disabled.
func wire(
	ctx context.Context,
	cfg *config.Config,
	database *sql.DB,
	productCache cache.ProductCache,
	tokens *auth.TokenManager,
	revoker auth.Revoker,
	log logger.Logger,
) *notify.SMTPNotifier {
	productRepo := repo.NewPostgresProductRepository(database)
	manufacturerRepo := repo.NewPostgresManufacturerRepository(database)
	categoryRepo := repo.NewPostgresCategoryRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)
	alertRepo := repo.NewPostgresAlertRepository(database)

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		created, err := auth.EnsureAdmin(ctx, userRepo, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			log.Errorf(err, "could not ensure admin account")
		} else if created {
			log.Infof("admin account %s created", cfg.Auth.AdminEmail)
		}
	}

	var notifier notify.Notifier = notify.NewLogNotifier(log)
	var mailer *notify.SMTPNotifier
	if cfg.SMTP.Enabled {
		mailer = notify.NewSMTPNotifier(cfg.SMTP, log)
		notifier = mailer
	}

	validator := validation.NewValidator(manufacturerRepo, categoryRepo)
	productService := service.NewProductService(productRepo, validator, productCache, log)
	alertService := service.NewAlertService(alertRepo, productRepo, userRepo, productCache, notifier, log)
	productService.SetStockWatcher(alertService)
	productService.SetMovementLog(repo.NewPostgresMovementRepository(database))

	handlers.SetLogger(log)
	handlers.SetProductService(productService)
	handlers.SetAlertService(alertService)
	handlers.SetManufacturerRepo(manufacturerRepo)
	handlers.SetCategoryRepo(categoryRepo)
	handlers.SetClientRepo(repo.NewPostgresClientRepository(database))
	handlers.SetUserRepo(userRepo)
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetTokenManager(tokens)
	handlers.SetRevoker(revoker)
	return mailer
}
