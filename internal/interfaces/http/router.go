package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vinoteca-api/internal/application/auth"
	"github.com/jhoicas/Vinoteca-api/internal/application/movement"
	"github.com/jhoicas/Vinoteca-api/internal/application/usecase"
	"github.com/jhoicas/Vinoteca-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	MovementUC    *movement.CreateMovementUseCase
	ProductUC     *usecase.ProductUseCase
	BranchUC      *usecase.BranchUseCase
	StockUC       *usecase.StockUseCase
	UserUC        *usecase.UserUseCase
	ClientUC      *usecase.ClientUseCase
	OAuthClientUC *usecase.OAuthClientUseCase
	Metrics       *Metrics
	JWTSecret     string
}

// Router registra las rutas de la API. El catálogo exige scopes read:*/write:*
// y la administración de usuarios, stock y clientes OAuth exige además rol
// admin; los traslados solo requieren un bearer válido. El 401 queda reservado
// a problemas de token y el 403 a permisos insuficientes.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Metrics)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	admin := RequireRole(entity.RoleAdmin)

	// Movements (protegido; el libro de traslados es inmutable: solo POST y GET).
	// Basta el bearer: cualquier usuario autenticado puede registrar y listar
	// traslados, sin exigir scopes adicionales.
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.Metrics)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)

	// Products (protegido)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireScopes("write:products"), productHandler.Create)
	products.Get("/", RequireScopes("read:products"), productHandler.List)
	products.Get("/:id", RequireScopes("read:products"), productHandler.GetByID)
	products.Put("/:id", RequireScopes("write:products"), productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Branches (protegido)
	branches := api.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", RequireScopes("write:products"), branchHandler.Create)
	branches.Get("/", RequireScopes("read:products"), branchHandler.List)
	branches.Get("/:id", RequireScopes("read:products"), branchHandler.GetByID)
	branches.Put("/:id", RequireScopes("write:products"), branchHandler.Update)
	branches.Delete("/:id", admin, branchHandler.Delete)

	// Stock (lecturas con scope; ajustes directos solo admin)
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", RequireScopes("read:stock"), stockHandler.List)
	stock.Get("/:id", RequireScopes("read:stock"), stockHandler.GetByID)
	stock.Post("/", admin, stockHandler.Create)
	stock.Put("/:id", admin, stockHandler.UpdateQuantity)
	stock.Delete("/:id", admin, stockHandler.Delete)

	// Users (solo admin)
	users := api.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Clients (protegido)
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// OAuth clients (solo admin)
	oauthClients := api.Group("/oauth-clients", admin)
	oauthClientHandler := NewOAuthClientHandler(deps.OAuthClientUC)
	oauthClients.Post("/", oauthClientHandler.Create)
	oauthClients.Get("/", oauthClientHandler.List)
	oauthClients.Delete("/:id", oauthClientHandler.Delete)
}
