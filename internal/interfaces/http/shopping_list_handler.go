package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

// ShoppingListHandler maneja las peticiones HTTP de la lista de compras.
type ShoppingListHandler struct {
	uc *usecase.ShoppingListUseCase
}

// NewShoppingListHandler construye el handler.
func NewShoppingListHandler(uc *usecase.ShoppingListUseCase) *ShoppingListHandler {
	return &ShoppingListHandler{uc: uc}
}

// List godoc
// @Summary      Lista de compras completa
// @Tags         shopping-list
// @Produce      json
// @Success      200  {array}  dto.ShoppingListItemResponse
// @Router       /api/shopping-list [get]
func (h *ShoppingListHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// AddManual godoc
// @Summary      Agregar producto a la lista manualmente
// @Tags         shopping-list
// @Accept       json
// @Param        body  body  dto.AddManualItemRequest  true  "Producto a agregar"
// @Success      201
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shopping-list [post]
func (h *ShoppingListHandler) AddManual(c *fiber.Ctx) error {
	var in dto.AddManualItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.AddManualItem(in.ProductID); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Recalculate godoc
// @Summary      Reconstruir la lista desde los niveles de stock
// @Tags         shopping-list
// @Success      204
// @Router       /api/shopping-list/recalculate [post]
func (h *ShoppingListHandler) Recalculate(c *fiber.Ctx) error {
	if err := h.uc.Recalculate(); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StartShopping godoc
// @Summary      Iniciar compra: desmarca todas las entradas
// @Tags         shopping-list
// @Success      204
// @Router       /api/shopping-list/start [post]
func (h *ShoppingListHandler) StartShopping(c *fiber.Ctx) error {
	if err := h.uc.StartShopping(); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Toggle godoc
// @Summary      Invertir el marcado de una entrada
// @Tags         shopping-list
// @Param        productId  path  string  true  "ID del producto"
// @Success      204
// @Router       /api/shopping-list/{productId}/toggle [put]
func (h *ShoppingListHandler) Toggle(c *fiber.Ctx) error {
	if err := h.uc.ToggleChecked(c.Params("productId")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Remove godoc
// @Summary      Sacar un producto de la lista
// @Tags         shopping-list
// @Param        productId  path  string  true  "ID del producto"
// @Success      204
// @Router       /api/shopping-list/{productId} [delete]
func (h *ShoppingListHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("productId")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checked godoc
// @Summary      Entradas marcadas de la lista
// @Tags         shopping-list
// @Produce      json
// @Success      200  {array}  dto.ShoppingListItemResponse
// @Router       /api/shopping-list/checked [get]
func (h *ShoppingListHandler) Checked(c *fiber.Ctx) error {
	out, err := h.uc.GetCheckedItems()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
