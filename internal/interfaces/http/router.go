package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/it-supplies-api/internal/application/auth"
	"github.com/tu-usuario/it-supplies-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProductUC    *usecase.ProductUseCase
	AssetUC      *usecase.AssetUseCase
	DescriptorUC *usecase.DescriptorUseCase
	LogUC        *usecase.LogUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las lecturas requieren sesión; toda
// mutación requiere además rol de administrador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, el resto con Bearer Token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)
	authGroup.Post("/change-password", AuthMiddleware(deps.JWTSecret), authHandler.ChangePassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireAdmin()

	// Users (gestión solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", admin, userHandler.List)
	users.Post("/", admin, userHandler.Create)
	users.Put("/:id", admin, userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)
	users.Post("/:id/reset-password", admin, userHandler.ResetPassword)
	users.Post("/:id/toggle-admin", admin, userHandler.ToggleAdmin)

	// Products (protegido; mutaciones solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.Search)
	products.Post("/", admin, productHandler.Create)
	products.Patch("/:id/quantity", admin, productHandler.AdjustQuantity)

	// Assets (protegido; mutaciones solo admin)
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Get("/", assetHandler.List)
	assets.Post("/", admin, assetHandler.Create)
	assets.Post("/import", admin, assetHandler.Import)
	assets.Post("/:id/products", admin, assetHandler.Install)
	assets.Delete("/:id", admin, assetHandler.Remove)

	// Descriptors (protegido; mutaciones solo admin)
	descriptors := protected.Group("/descriptors")
	descriptorHandler := NewDescriptorHandler(deps.DescriptorUC)
	descriptors.Get("/", descriptorHandler.List)
	descriptors.Post("/", admin, descriptorHandler.Create)
	descriptors.Delete("/:id", admin, descriptorHandler.Delete)

	// Logs (solo lectura)
	logs := protected.Group("/logs")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", logHandler.Query)
}
