package domain

import (
	"errors"
	"fmt"
)

// Categorías de error de dominio (sin dependencias externas).
// Los errores específicos envuelven su categoría, así errors.Is
// funciona tanto con el código puntual como con la categoría.
var (
	ErrValidation = errors.New("error de validación")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrConflict   = errors.New("conflicto con el estado actual")
)

// Errores de validación.
var (
	ErrInvalidFormat       = fmt.Errorf("%w: el id no tiene formato UUID", ErrValidation)
	ErrNegativeQuantity    = fmt.Errorf("%w: la cantidad no puede ser negativa", ErrValidation)
	ErrNonPositiveQuantity = fmt.Errorf("%w: la cantidad comprada debe ser mayor a cero", ErrValidation)
	ErrInvalidUnit         = fmt.Errorf("%w: unidad de medida desconocida", ErrValidation)
	ErrInvalidStockLevel   = fmt.Errorf("%w: nivel de stock desconocido", ErrValidation)
	ErrInvalidProductName  = fmt.Errorf("%w: el nombre debe tener al menos 2 caracteres", ErrValidation)
	ErrEmptyPurchase       = fmt.Errorf("%w: la compra no tiene ítems", ErrValidation)
)

// Errores de recurso ausente.
var (
	ErrProductNotFound       = fmt.Errorf("%w: producto no encontrado", ErrNotFound)
	ErrProductNotInInventory = fmt.Errorf("%w: el producto no está en el inventario", ErrNotFound)
)

// Errores de conflicto.
var (
	ErrDuplicateProductName = fmt.Errorf("%w: ya existe un producto con ese nombre", ErrConflict)
	ErrDuplicateInList      = fmt.Errorf("%w: el producto ya está en la lista de compras", ErrConflict)
)
