package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/stock"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// ProductUseCase casos de uso CRUD para productos de la despensa.
type ProductUseCase struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, inventory repository.InventoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, inventory: inventory}
}

// AddProduct registra un producto nuevo. El nombre debe ser único
// (sin distinguir mayúsculas). Si InitialQuantity viene, crea además
// el ítem de inventario con nivel high.
func (uc *ProductUseCase) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit, err := valueobject.UnitTypeFromString(in.UnitType)
	if err != nil {
		return nil, err
	}
	product, err := entity.NewProduct(valueobject.NewProductID(), in.Name, unit)
	if err != nil {
		return nil, err
	}
	existing, err := uc.products.FindByName(product.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateProductName
	}
	if err := uc.products.Save(product); err != nil {
		return nil, err
	}
	if in.InitialQuantity != nil {
		qty, err := valueobject.NewQuantity(*in.InitialQuantity)
		if err != nil {
			return nil, err
		}
		item := entity.NewInventoryItem(product.ID, qty, product.UnitType)
		if err := uc.inventory.Save(item); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// UpdateProduct construye una instancia nueva del producto con los
// campos recibidos y hace upsert por ID (las entidades no se mutan).
func (uc *ProductUseCase) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	productID, err := valueobject.ProductIDFromString(id)
	if err != nil {
		return nil, err
	}
	current, err := uc.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrProductNotFound
	}
	name := current.Name
	if in.Name != nil {
		name = *in.Name
	}
	unit := current.UnitType
	if in.UnitType != nil {
		unit, err = valueobject.UnitTypeFromString(*in.UnitType)
		if err != nil {
			return nil, err
		}
	}
	updated, err := entity.NewProduct(productID, name, unit)
	if err != nil {
		return nil, err
	}
	if updated.Name != current.Name {
		dup, err := uc.products.FindByName(updated.Name)
		if err != nil {
			return nil, err
		}
		if dup != nil && !dup.ID.Equals(productID) {
			return nil, domain.ErrDuplicateProductName
		}
	}
	if err := uc.products.Save(updated); err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// DeleteProduct elimina un producto. La pre-verificación de existencia
// se hace aquí; el repositorio es solo la guarda final.
func (uc *ProductUseCase) DeleteProduct(id string) error {
	productID, err := valueobject.ProductIDFromString(id)
	if err != nil {
		return err
	}
	existing, err := uc.products.FindByID(productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrProductNotFound
	}
	return uc.products.Delete(productID)
}

// GetAllProducts devuelve todos los productos.
func (uc *ProductUseCase) GetAllProducts() ([]dto.ProductResponse, error) {
	list, err := uc.products.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetProductsWithInventory devuelve el join producto + inventario,
// ordenado por nombre ascendente (colación en español). La cantidad
// es 0 cuando el producto aún no tiene ítem de inventario.
func (uc *ProductUseCase) GetProductsWithInventory() ([]dto.ProductWithInventoryResponse, error) {
	products, err := uc.products.FindAll()
	if err != nil {
		return nil, err
	}
	items, err := uc.inventory.FindAll()
	if err != nil {
		return nil, err
	}
	itemByID := make(map[string]entity.InventoryItem, len(items))
	for _, it := range items {
		itemByID[it.ProductID.String()] = it
	}

	out := make([]dto.ProductWithInventoryResponse, 0, len(products))
	for _, p := range products {
		row := dto.ProductWithInventoryResponse{
			ID:       p.ID.String(),
			Name:     p.Name,
			UnitType: p.UnitType.String(),
		}
		if it, ok := itemByID[p.ID.String()]; ok {
			pct := stock.LevelPercentage(it.StockLevel)
			row.Quantity = it.CurrentStock.Value()
			row.StockLevel = it.StockLevel.String()
			row.LevelColor = stock.LevelColor(it.StockLevel)
			row.LevelPercentage = &pct
		}
		out = append(out, row)
	}

	c := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		UnitType: p.UnitType.String(),
	}
}
