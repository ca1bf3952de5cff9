package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// Una compra es aditiva: stock 5 + compra 3 = 8.
func TestRegisterPurchase_SumaAlStockExistente(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProductWithStock(t, "Leche", 5)

	out, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseItemRequest{{ProductID: id, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ItemCount)

	item, err := env.inventory.FindByProductID(mustProductID(t, id))
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 8, item.CurrentStock.Value())
}

// La primera compra de un producto sin inventario crea el ítem con la
// cantidad exacta comprada y la unidad del producto.
func TestRegisterPurchase_CreaInventarioEnPrimeraCompra(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Aceite de oliva")

	_, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseItemRequest{{ProductID: id, Quantity: 2}},
	})
	require.NoError(t, err)

	item, err := env.inventory.FindByProductID(mustProductID(t, id))
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 2, item.CurrentStock.Value())
	assert.Equal(t, valueobject.UnitUnits, item.UnitType)
	assert.Equal(t, valueobject.StockHigh, item.StockLevel)
}

// Una compra solo cambia cantidades: el nivel de stock y la membresía
// en la lista quedan intactos hasta recalcular.
func TestRegisterPurchase_NoTocaElNivelDeStock(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProductWithStock(t, "Café", 1)
	require.NoError(t, env.stockUC.UpdateStockLevel(id, "low"))

	_, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseItemRequest{{ProductID: id, Quantity: 6}},
	})
	require.NoError(t, err)

	item, err := env.inventory.FindByProductID(mustProductID(t, id))
	require.NoError(t, err)
	assert.Equal(t, valueobject.StockLow, item.StockLevel, "la compra no deriva el nivel")
	assert.Equal(t, 7, item.CurrentStock.Value())

	exists, err := env.shoppingList.Exists(mustProductID(t, id))
	require.NoError(t, err)
	assert.True(t, exists, "la entrada auto sigue hasta que se recalcule o edite el nivel")
}

func TestRegisterPurchase_VaciaFalla(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyPurchase)
}

// Toda la validación ocurre antes de cualquier escritura: una línea
// inválida aborta la compra completa sin mutar el inventario.
func TestRegisterPurchase_CantidadNoPositivaNoMuta(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProductWithStock(t, "Pan", 5)

	for _, qty := range []int{0, -2} {
		_, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
			Items: []dto.PurchaseItemRequest{
				{ProductID: id, Quantity: 3},
				{ProductID: id, Quantity: qty},
			},
		})
		assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
	}

	item, err := env.inventory.FindByProductID(mustProductID(t, id))
	require.NoError(t, err)
	assert.Equal(t, 5, item.CurrentStock.Value(), "ninguna línea debe haberse aplicado")
}

func TestRegisterPurchase_ProductoInexistenteNoMuta(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProductWithStock(t, "Queso", 2)

	_, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseItemRequest{
			{ProductID: id, Quantity: 4},
			{ProductID: uuid.New().String(), Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	item, lookupErr := env.inventory.FindByProductID(mustProductID(t, id))
	require.NoError(t, lookupErr)
	assert.Equal(t, 2, item.CurrentStock.Value())
}

func TestRegisterPurchase_IDInvalidoFalla(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseItemRequest{{ProductID: "no-es-uuid", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
}

// El total del ticket suma cantidad * precio; las líneas sin precio
// aportan cero y nada de esto toca el inventario.
func TestRegisterPurchase_TotalDelTicket(t *testing.T) {
	env := newTestEnv(t)
	a := env.addProduct(t, "Tomates")
	b := env.addProduct(t, "Cebollas")

	out, err := env.purchaseUC.RegisterPurchase(dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseItemRequest{
			{ProductID: a, Quantity: 3, UnitPrice: decimal.NewFromFloat(1.20)},
			{ProductID: b, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.NewFromFloat(3.60)),
		"total esperado 3.60, obtenido %s", out.Total)
	assert.Equal(t, 2, out.ItemCount)
	assert.NotEmpty(t, out.ID)
}
