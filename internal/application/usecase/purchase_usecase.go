package usecase

import (
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// RegisterPurchaseUseCase registra una compra y repone el inventario.
// Una compra solo cambia cantidades: el nivel de stock queda intacto
// hasta que el usuario lo edite o se recalcule la lista.
type RegisterPurchaseUseCase struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(products repository.ProductRepository, inventory repository.InventoryRepository) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{products: products, inventory: inventory}
}

// RegisterPurchase valida la compra completa antes de escribir: si
// cualquier línea falla, no se persiste nada. Luego suma cada cantidad
// al stock existente (o crea el ítem de inventario en la primera compra).
func (uc *RegisterPurchaseUseCase) RegisterPurchase(in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyPurchase
	}

	// 1. Validar todas las líneas y resolver los productos
	items := make([]entity.PurchaseItem, 0, len(in.Items))
	productByID := make(map[string]entity.Product, len(in.Items))
	for _, line := range in.Items {
		productID, err := valueobject.ProductIDFromString(line.ProductID)
		if err != nil {
			return nil, err
		}
		if line.Quantity <= 0 {
			return nil, domain.ErrNonPositiveQuantity
		}
		qty, err := valueobject.NewQuantity(line.Quantity)
		if err != nil {
			return nil, err
		}
		item, err := entity.NewPurchaseItem(productID, qty, line.UnitPrice)
		if err != nil {
			return nil, err
		}
		product, err := uc.products.FindByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		productByID[productID.String()] = *product
		items = append(items, item)
	}

	purchase, err := entity.NewPurchase(items)
	if err != nil {
		return nil, err
	}

	// 2. Aplicar cada línea al inventario (upsert secuencial por producto)
	for _, item := range purchase.Items {
		product := productByID[item.ProductID.String()]
		existing, err := uc.inventory.FindByProductID(item.ProductID)
		if err != nil {
			return nil, err
		}
		var updated entity.InventoryItem
		if existing != nil {
			updated = existing.WithStock(existing.CurrentStock.Add(item.Quantity))
		} else {
			updated = entity.NewInventoryItem(item.ProductID, item.Quantity, product.UnitType)
		}
		if err := uc.inventory.Save(updated); err != nil {
			return nil, err
		}
	}

	return &dto.PurchaseResponse{
		ID:         purchase.ID,
		OccurredAt: purchase.OccurredAt,
		ItemCount:  len(purchase.Items),
		Total:      purchase.Total(),
	}, nil
}
