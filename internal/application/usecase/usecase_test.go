package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/infrastructure/kvstore"
)

// testEnv casos de uso cableados sobre un almacén bbolt temporal,
// igual que en main pero con archivo por test.
type testEnv struct {
	products     *kvstore.ProductRepo
	inventory    *kvstore.InventoryRepo
	shoppingList *kvstore.ShoppingListRepo

	productUC  *usecase.ProductUseCase
	purchaseUC *usecase.RegisterPurchaseUseCase
	stockUC    *usecase.StockUseCase
	listUC     *usecase.ShoppingListUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "despensa-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	env := &testEnv{
		products:     kvstore.NewProductRepository(store),
		inventory:    kvstore.NewInventoryRepository(store),
		shoppingList: kvstore.NewShoppingListRepository(store),
	}
	env.productUC = usecase.NewProductUseCase(env.products, env.inventory)
	env.purchaseUC = usecase.NewRegisterPurchaseUseCase(env.products, env.inventory)
	env.stockUC = usecase.NewStockUseCase(env.inventory, env.shoppingList)
	env.listUC = usecase.NewShoppingListUseCase(env.products, env.inventory, env.shoppingList)
	return env
}

// addProduct registra un producto sin inventario y devuelve su ID.
func (e *testEnv) addProduct(t *testing.T, name string) string {
	t.Helper()
	out, err := e.productUC.AddProduct(dto.CreateProductRequest{Name: name, UnitType: "units"})
	require.NoError(t, err)
	return out.ID
}

// addProductWithStock registra producto + ítem de inventario inicial.
func (e *testEnv) addProductWithStock(t *testing.T, name string, qty int) string {
	t.Helper()
	out, err := e.productUC.AddProduct(dto.CreateProductRequest{
		Name:            name,
		UnitType:        "units",
		InitialQuantity: &qty,
	})
	require.NoError(t, err)
	return out.ID
}
