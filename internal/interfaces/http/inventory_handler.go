package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

// InventoryHandler maneja nivel de stock y compras.
type InventoryHandler struct {
	stockUC    *usecase.StockUseCase
	purchaseUC *usecase.RegisterPurchaseUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stockUC *usecase.StockUseCase, purchaseUC *usecase.RegisterPurchaseUseCase) *InventoryHandler {
	return &InventoryHandler{stockUC: stockUC, purchaseUC: purchaseUC}
}

// UpdateStockLevel godoc
// @Summary      Fijar nivel de stock de un producto
// @Tags         inventory
// @Accept       json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateStockLevelRequest  true  "Nivel nuevo"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId}/stock-level [put]
func (h *InventoryHandler) UpdateStockLevel(c *fiber.Ctx) error {
	var in dto.UpdateStockLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.stockUC.UpdateStockLevel(c.Params("productId"), in.StockLevel); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restock godoc
// @Summary      Productos que necesitan reposición (nivel low/empty)
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryItemResponse
// @Router       /api/inventory/restock [get]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	out, err := h.stockUC.GetProductsNeedingRestock()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// RegisterPurchase godoc
// @Summary      Registrar compra (repone cantidades, no toca niveles)
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterPurchaseRequest  true  "Líneas de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *InventoryHandler) RegisterPurchase(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.purchaseUC.RegisterPurchase(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
