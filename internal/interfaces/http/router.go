package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lacteos-pro/internal/application/auth"
	"github.com/tu-usuario/lacteos-pro/internal/application/inventory"
	"github.com/tu-usuario/lacteos-pro/internal/application/usecase"
	"github.com/tu-usuario/lacteos-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC           *usecase.ItemUseCase
	RecipeUC         *usecase.RecipeUseCase
	BatchUC          *usecase.BatchUseCase
	MilkUC           *usecase.MilkUseCase
	PartnerUC        *usecase.PartnerUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público: la UI lo necesita antes del login)
	catalogHandler := NewCatalogHandler()
	api.Get("/catalog", catalogHandler.Get)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Materias primas y productos (protegido)
	itemHandler := NewItemHandler(deps.ItemUC)
	rawMaterials := protected.Group("/raw-materials")
	rawMaterials.Post("/", itemHandler.CreateRawMaterial)
	rawMaterials.Get("/", itemHandler.ListRawMaterials)
	rawMaterials.Get("/:id", itemHandler.GetRawMaterial)
	rawMaterials.Put("/:id/levels", itemHandler.UpdateRawMaterialLevels)

	products := protected.Group("/products")
	products.Post("/", itemHandler.CreateProduct)
	products.Get("/", itemHandler.ListProducts)
	products.Get("/:id", itemHandler.GetProduct)
	products.Put("/:id/levels", itemHandler.UpdateProductLevels)

	// Movimientos de stock (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.History)

	// Recetas (protegido; borrar recetas es solo de admin/supervisor)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Delete("/:id", RequireRoles(entity.RoleAdmin, entity.RoleSupervisor), recipeHandler.Delete)

	// Lotes de producción (protegido)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Put("/:id/status", batchHandler.UpdateStatus)

	// Recolecciones de leche (protegido)
	milk := protected.Group("/milk-collections")
	milkHandler := NewMilkHandler(deps.MilkUC)
	milk.Post("/", milkHandler.Register)
	milk.Get("/", milkHandler.List)
	milk.Get("/report", milkHandler.Report)

	// Proveedores y clientes (protegido)
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", partnerHandler.CreateSupplier)
	suppliers.Get("/", partnerHandler.ListSuppliers)

	clients := protected.Group("/clients")
	clients.Post("/", partnerHandler.CreateClient)
	clients.Get("/", partnerHandler.ListClients)
}
