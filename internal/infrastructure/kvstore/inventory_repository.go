package kvstore

import (
	"sort"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre el almacén embebido.
type InventoryRepo struct {
	col *Collection[inventoryRecord]
}

// NewInventoryRepository construye el adaptador de inventario.
func NewInventoryRepository(store *Store) *InventoryRepo {
	return &InventoryRepo{col: NewCollection[inventoryRecord](store, inventoryKey)}
}

// Save inserta o reemplaza el ítem (upsert por ProductID).
func (r *InventoryRepo) Save(item entity.InventoryItem) error {
	return r.col.Update(func(records []inventoryRecord) ([]inventoryRecord, error) {
		byID := indexInventory(records)
		byID[item.ProductID.String()] = toInventoryRecord(item)
		return sortedInventory(byID), nil
	})
}

// FindByProductID devuelve el ítem o nil si no existe.
func (r *InventoryRepo) FindByProductID(id valueobject.ProductID) (*entity.InventoryItem, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ProductID == id.String() {
			if item, ok := fromInventoryRecord(rec); ok {
				return &item, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

// FindAll devuelve todos los ítems de inventario.
func (r *InventoryRepo) FindAll() ([]entity.InventoryItem, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	out := make([]entity.InventoryItem, 0, len(records))
	for _, rec := range records {
		if item, ok := fromInventoryRecord(rec); ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func indexInventory(records []inventoryRecord) map[string]inventoryRecord {
	byID := make(map[string]inventoryRecord, len(records))
	for _, rec := range records {
		byID[rec.ProductID] = rec
	}
	return byID
}

func sortedInventory(byID map[string]inventoryRecord) []inventoryRecord {
	out := make([]inventoryRecord, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
