package usecase_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestAddProduct_ValidaUnidadYNombre(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.productUC.AddProduct(dto.CreateProductRequest{Name: "Miel", UnitType: "grams"})
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = env.productUC.AddProduct(dto.CreateProductRequest{Name: " x ", UnitType: "kg"})
	assert.ErrorIs(t, err, domain.ErrInvalidProductName)
}

func TestAddProduct_NombreDuplicadoFalla(t *testing.T) {
	env := newTestEnv(t)
	env.addProduct(t, "Tomates")

	_, err := env.productUC.AddProduct(dto.CreateProductRequest{Name: "tomates", UnitType: "kg"})
	assert.ErrorIs(t, err, domain.ErrDuplicateProductName, "el nombre es único sin distinguir mayúsculas")
}

func TestAddProduct_ConCantidadInicialCreaInventario(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProductWithStock(t, "Detergente", 3)

	item, err := env.inventory.FindByProductID(mustProductID(t, id))
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 3, item.CurrentStock.Value())
}

func TestUpdateProduct_InexistenteFalla(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.productUC.UpdateProduct(uuid.New().String(), dto.UpdateProductRequest{Name: strPtr("Nuevo")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProduct_CambiaNombreYUnidad(t *testing.T) {
	env := newTestEnv(t)
	id := env.addProduct(t, "Jugo")

	out, err := env.productUC.UpdateProduct(id, dto.UpdateProductRequest{
		Name:     strPtr("Jugo de naranja"),
		UnitType: strPtr("liters"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jugo de naranja", out.Name)
	assert.Equal(t, "liters", out.UnitType)

	// El nombre nuevo no puede chocar con otro producto
	env.addProduct(t, "Vinagre")
	_, err = env.productUC.UpdateProduct(id, dto.UpdateProductRequest{Name: strPtr("vinagre")})
	assert.ErrorIs(t, err, domain.ErrDuplicateProductName)
}

func TestDeleteProduct_PreVerificaExistencia(t *testing.T) {
	env := newTestEnv(t)

	err := env.productUC.DeleteProduct(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	id := env.addProduct(t, "Pilas")
	require.NoError(t, env.productUC.DeleteProduct(id))

	all, err := env.productUC.GetAllProducts()
	require.NoError(t, err)
	assert.Empty(t, all)
}

// El join producto + inventario sale ordenado por nombre ascendente y
// la cantidad vale 0 cuando aún no hay ítem de inventario.
func TestGetProductsWithInventory_OrdenYDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.addProductWithStock(t, "Zanahorias", 6)
	env.addProduct(t, "Aceitunas") // sin inventario
	env.addProductWithStock(t, "Manzanas", 4)

	out, err := env.productUC.GetProductsWithInventory()
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Aceitunas", out[0].Name)
	assert.Equal(t, "Manzanas", out[1].Name)
	assert.Equal(t, "Zanahorias", out[2].Name)

	assert.Equal(t, 0, out[0].Quantity)
	assert.Empty(t, out[0].StockLevel)
	assert.Nil(t, out[0].LevelPercentage)

	assert.Equal(t, 4, out[1].Quantity)
	assert.Equal(t, "high", out[1].StockLevel)
	assert.Equal(t, "green", out[1].LevelColor)
	require.NotNil(t, out[1].LevelPercentage)
	assert.Equal(t, 87.5, *out[1].LevelPercentage)
}
