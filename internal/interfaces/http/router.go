package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supermercado-api/internal/application/auth"
	"github.com/jhoicas/supermercado-api/internal/application/report"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/domain/entity"
	"github.com/jhoicas/supermercado-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/supermercado-api/pkg/jwt"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	SupermarketUC *usecase.SupermarketUseCase
	UserUC        *usecase.UserUseCase
	ProductUC     *usecase.ProductUseCase
	LowStockUC    *report.LowStockUseCase

	JWTConfig pkgjwt.Config
	Cookies   CookieSettings
	UserRepo  repository.UserRepository
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	session := AuthMiddleware(deps.JWTConfig, deps.UserRepo, deps.Log)

	// Auth: register/login/refresh/logout públicos, profile con sesión.
	// Refresh y logout no pasan por el middleware de sesión: funcionan aun
	// con el access token ya vencido.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookies, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/profile", session, authHandler.Profile)

	// Supermarkets: lectura para cualquier sesión (el caso de uso acota por
	// rol), escritura solo admin.
	supermarkets := api.Group("/supermarkets", session)
	supermarketHandler := NewSupermarketHandler(deps.SupermarketUC, deps.Log)
	supermarkets.Get("/", supermarketHandler.List)
	supermarkets.Post("/", RequireRole(entity.RoleAdmin), supermarketHandler.Create)
	supermarkets.Put("/:id", RequireRole(entity.RoleAdmin), supermarketHandler.Update)
	supermarkets.Delete("/:id", RequireRole(entity.RoleAdmin), supermarketHandler.Delete)

	// Staff: solo admin y manager.
	users := api.Group("/users", session, RequireRole(entity.RoleAdmin, entity.RoleManager))
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products: cualquier sesión activa.
	products := api.Group("/products", session)
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/supermarket/:supermarketId", productHandler.ListBySupermarket)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Reports: admin y manager.
	reports := api.Group("/reports", session, RequireRole(entity.RoleAdmin, entity.RoleManager))
	reportHandler := NewReportHandler(deps.LowStockUC, deps.Log)
	reports.Get("/low-stock", reportHandler.LowStock)

	// Health (público, para chequeos de infraestructura).
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
