package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	PurchaseUC     *usecase.RegisterPurchaseUseCase
	StockUC        *usecase.StockUseCase
	ShoppingListUC *usecase.ShoppingListUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/inventory", productHandler.ListWithInventory)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventario y compras
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.PurchaseUC)
	inventory := api.Group("/inventory")
	inventory.Put("/:productId/stock-level", inventoryHandler.UpdateStockLevel)
	inventory.Get("/restock", inventoryHandler.Restock)
	api.Post("/purchases", inventoryHandler.RegisterPurchase)

	// Lista de compras
	list := api.Group("/shopping-list")
	listHandler := NewShoppingListHandler(deps.ShoppingListUC)
	list.Get("/", listHandler.List)
	list.Post("/", listHandler.AddManual)
	list.Post("/recalculate", listHandler.Recalculate)
	list.Post("/start", listHandler.StartShopping)
	list.Get("/checked", listHandler.Checked)
	list.Put("/:productId/toggle", listHandler.Toggle)
	list.Delete("/:productId", listHandler.Remove)
}
