package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/supermercado-api/internal/application/auth"
	"github.com/jhoicas/supermercado-api/internal/application/report"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/supermercado-api/internal/infrastructure/pdf"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/supermercado-api/internal/interfaces/http"
	"github.com/jhoicas/supermercado-api/pkg/config"
	pkgjwt "github.com/jhoicas/supermercado-api/pkg/jwt"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	userRepo := postgres.NewUserRepository(pool)
	supermarketRepo := postgres.NewSupermarketRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	jwtCfg := pkgjwt.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Issuer:        cfg.JWT.Issuer,
		AccessTTL:     time.Duration(cfg.JWT.AccessExpMinutes) * time.Minute,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshExpHours) * time.Hour,
	}

	authUC := auth.NewAuthUseCase(userRepo, jwtCfg)
	supermarketUC := usecase.NewSupermarketUseCase(supermarketRepo)
	userUC := usecase.NewUserUseCase(userRepo, supermarketRepo)
	productUC := usecase.NewProductUseCase(productRepo, supermarketRepo)
	lowStockUC := report.NewLowStockUseCase(productRepo, supermarketRepo, infrapdf.NewLowStockReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Sesión por cookies: el frontend necesita credentials y un origen
	// explícito, el wildcard no sirve con AllowCredentials.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermercado API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SupermarketUC: supermarketUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		LowStockUC:    lowStockUC,
		JWTConfig:     jwtCfg,
		Cookies: httpRouter.CookieSettings{
			Secure:     !cfg.App.IsDevelopment(),
			AccessTTL:  jwtCfg.AccessTTL,
			RefreshTTL: jwtCfg.RefreshTTL,
		},
		UserRepo: userRepo,
		Log:      log,
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
