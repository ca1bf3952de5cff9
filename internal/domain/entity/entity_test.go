package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

func mustQuantity(t *testing.T, v int) valueobject.Quantity {
	t.Helper()
	q, err := valueobject.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func TestNewProduct_RecortaYValidaNombre(t *testing.T) {
	id := valueobject.NewProductID()

	p, err := entity.NewProduct(id, "  Leche entera  ", valueobject.UnitLiters)
	require.NoError(t, err)
	assert.Equal(t, "Leche entera", p.Name)

	_, err = entity.NewProduct(id, " a ", valueobject.UnitUnits)
	assert.ErrorIs(t, err, domain.ErrInvalidProductName, "un solo carácter tras recortar no alcanza")

	_, err = entity.NewProduct(id, "   ", valueobject.UnitUnits)
	assert.ErrorIs(t, err, domain.ErrInvalidProductName)
}

func TestNewInventoryItem_NivelInicialHigh(t *testing.T) {
	item := entity.NewInventoryItem(valueobject.NewProductID(), mustQuantity(t, 4), valueobject.UnitKg)
	assert.Equal(t, valueobject.StockHigh, item.StockLevel)
	assert.False(t, item.LastUpdated.IsZero())
}

func TestInventoryItem_WithStockDevuelveCopia(t *testing.T) {
	original := entity.NewInventoryItem(valueobject.NewProductID(), mustQuantity(t, 5), valueobject.UnitUnits)

	updated := original.WithStock(mustQuantity(t, 8))

	assert.Equal(t, 8, updated.CurrentStock.Value())
	assert.Equal(t, 5, original.CurrentStock.Value(), "la instancia original no debe mutar")
	assert.False(t, updated.LastUpdated.Before(original.LastUpdated), "LastUpdated debe refrescarse")
}

func TestInventoryItem_WithStockLevelNoTocaCantidad(t *testing.T) {
	original := entity.NewInventoryItem(valueobject.NewProductID(), mustQuantity(t, 5), valueobject.UnitUnits)

	updated := original.WithStockLevel(valueobject.StockLow)

	assert.Equal(t, valueobject.StockLow, updated.StockLevel)
	assert.Equal(t, 5, updated.CurrentStock.Value())
	assert.Equal(t, valueobject.StockHigh, original.StockLevel)
}

func TestShoppingListItem_AutoLlevaNivel(t *testing.T) {
	id := valueobject.NewProductID()

	auto := entity.NewAutoShoppingListItem(id, valueobject.StockLow)
	assert.Equal(t, entity.ReasonAuto, auto.Reason)
	assert.True(t, auto.HasStockLevel())
	assert.Equal(t, valueobject.StockLow, auto.StockLevel)
	assert.False(t, auto.Checked)

	manual := entity.NewManualShoppingListItem(id)
	assert.Equal(t, entity.ReasonManual, manual.Reason)
	assert.False(t, manual.HasStockLevel())
	assert.False(t, manual.Checked)
}

func TestShoppingListItem_ToggledDevuelveCopia(t *testing.T) {
	it := entity.NewManualShoppingListItem(valueobject.NewProductID())

	toggled := it.Toggled()
	assert.True(t, toggled.Checked)
	assert.False(t, it.Checked, "la instancia original no debe mutar")
	assert.False(t, toggled.Toggled().Checked)
}

func TestNewPurchase_RechazaVacia(t *testing.T) {
	_, err := entity.NewPurchase(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPurchase)
}

func TestNewPurchaseItem_RechazaCantidadNoPositiva(t *testing.T) {
	_, err := entity.NewPurchaseItem(valueobject.NewProductID(), mustQuantity(t, 0), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
}

func TestPurchase_TotalSumaLineasConPrecio(t *testing.T) {
	a, err := entity.NewPurchaseItem(valueobject.NewProductID(), mustQuantity(t, 2), decimal.NewFromFloat(3.50))
	require.NoError(t, err)
	// Línea sin precio: aporta cero al total
	b, err := entity.NewPurchaseItem(valueobject.NewProductID(), mustQuantity(t, 4), decimal.Zero)
	require.NoError(t, err)

	purchase, err := entity.NewPurchase([]entity.PurchaseItem{a, b})
	require.NoError(t, err)

	assert.True(t, purchase.Total().Equal(decimal.NewFromFloat(7.00)),
		"total esperado 7.00, obtenido %s", purchase.Total())
	assert.NotEmpty(t, purchase.ID)
}
