package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/prixmathaiti/prixmat-api/internal/application/auth"
	"github.com/prixmathaiti/prixmat-api/internal/application/usecase"
	"github.com/prixmathaiti/prixmat-api/internal/infrastructure/metrics"
	"github.com/prixmathaiti/prixmat-api/internal/infrastructure/postgres"
	apphttp "github.com/prixmathaiti/prixmat-api/internal/interfaces/http"
	"github.com/prixmathaiti/prixmat-api/internal/ratelimit"
	"github.com/prixmathaiti/prixmat-api/pkg/config"
	"github.com/prixmathaiti/prixmat-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	if err := postgres.Migrate(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migrations de la base")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	fournisseurRepo := postgres.NewFournisseurRepository(pool)
	publiciteRepo := postgres.NewPubliciteRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	materialUC := usecase.NewMaterialUseCase(materialRepo, fournisseurRepo)
	fournisseurUC := usecase.NewFournisseurUseCase(fournisseurRepo, materialRepo)
	publiciteUC := usecase.NewPubliciteUseCase(publiciteRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Limiteur par IP à fenêtre glissante, purgé périodiquement.
	limiter := ratelimit.New(ratelimit.Config{
		MaxRequests:   cfg.RateLimit.MaxRequests,
		Window:        cfg.RateLimit.Window,
		SweepInterval: cfg.RateLimit.SweepInterval,
	})
	defer limiter.Close()

	m, registry := metrics.New(func() float64 { return float64(limiter.Keys()) })
	if cfg.Metrics.Enabled {
		metricsSrv := metrics.NewServer(cfg.Metrics.Addr, registry)
		go func() {
			if err := metricsSrv.Start(); err != nil {
				log.Error().Err(err).Msg("serveur de métriques arrêté")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(compress.New())
	origins := cfg.HTTP.Origins()
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		// Fiber refuse credentials avec le joker "*".
		AllowCredentials: origins != "*",
		MaxAge:           86400,
	}))

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PrixMat Haïti API",
	}))

	apphttp.Router(app, apphttp.RouterDeps{
		MaterialUC:    materialUC,
		FournisseurUC: fournisseurUC,
		PubliciteUC:   publiciteUC,
		AuthUC:        authUC,
		Fournisseurs:  fournisseurRepo,
		Limiter:       limiter,
		Metrics:       m,
		Log:           log,
		JWTSecret:     cfg.JWT.Secret,
		ExposeDetail:  !cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
