package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Vinoteca-api/internal/application/auth"
	"github.com/jhoicas/Vinoteca-api/internal/application/movement"
	"github.com/jhoicas/Vinoteca-api/internal/application/usecase"
	"github.com/jhoicas/Vinoteca-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Vinoteca-api/internal/interfaces/http"
	"github.com/jhoicas/Vinoteca-api/pkg/config"
	"github.com/jhoicas/Vinoteca-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	oauthClientRepo := postgres.NewOAuthClientRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	if err := postgres.SeedAdminUser(userRepo, log); err != nil {
		log.Fatal().Err(err).Msg("seed del usuario admin")
	}
	if err := postgres.SeedOAuthClient(oauthClientRepo, log); err != nil {
		log.Fatal().Err(err).Msg("seed del cliente OAuth")
	}

	movementUC := movement.NewCreateMovementUseCase(txRunner, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo, branchRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	oauthClientUC := usecase.NewOAuthClientUseCase(oauthClientRepo)
	authUC := auth.NewAuthUseCase(userRepo, oauthClientRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	metrics := httpRouter.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vinoteca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		MovementUC:    movementUC,
		ProductUC:     productUC,
		BranchUC:      branchUC,
		StockUC:       stockUC,
		UserUC:        userUC,
		ClientUC:      clientUC,
		OAuthClientUC: oauthClientUC,
		Metrics:       metrics,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
