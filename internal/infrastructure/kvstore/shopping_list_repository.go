package kvstore

import (
	"sort"

	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

var _ repository.ShoppingListRepository = (*ShoppingListRepo)(nil)

// ShoppingListRepo implementación de ShoppingListRepository sobre el
// almacén embebido. Garantiza a lo sumo una entrada por producto.
type ShoppingListRepo struct {
	col *Collection[shoppingListRecord]
}

// NewShoppingListRepository construye el adaptador de la lista de compras.
func NewShoppingListRepository(store *Store) *ShoppingListRepo {
	return &ShoppingListRepo{col: NewCollection[shoppingListRecord](store, shoppingListKey)}
}

// FindAll devuelve la lista completa.
func (r *ShoppingListRepo) FindAll() ([]entity.ShoppingListItem, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	out := make([]entity.ShoppingListItem, 0, len(records))
	for _, rec := range records {
		if it, ok := fromShoppingListRecord(rec); ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// FindByProductID devuelve la entrada o nil si no existe.
func (r *ShoppingListRepo) FindByProductID(id valueobject.ProductID) (*entity.ShoppingListItem, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ProductID == id.String() {
			if it, ok := fromShoppingListRecord(rec); ok {
				return &it, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

// Add hace upsert por ProductID: reemplaza cualquier entrada previa del
// producto (auto o manual) y deja el marcado en false.
func (r *ShoppingListRepo) Add(item entity.ShoppingListItem) error {
	return r.col.Update(func(records []shoppingListRecord) ([]shoppingListRecord, error) {
		byID := indexShoppingList(records)
		rec := toShoppingListRecord(item)
		rec.Checked = false
		byID[rec.ProductID] = rec
		return sortedShoppingList(byID), nil
	})
}

// Remove elimina la entrada del producto; no hace nada si no existe.
func (r *ShoppingListRepo) Remove(id valueobject.ProductID) error {
	return r.col.Update(func(records []shoppingListRecord) ([]shoppingListRecord, error) {
		byID := indexShoppingList(records)
		delete(byID, id.String())
		return sortedShoppingList(byID), nil
	})
}

// Exists indica si hay entrada para el producto.
func (r *ShoppingListRepo) Exists(id valueobject.ProductID) (bool, error) {
	records, err := r.col.Load()
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if rec.ProductID == id.String() {
			return true, nil
		}
	}
	return false, nil
}

// ToggleChecked invierte el marcado de la entrada; no hace nada si no existe.
func (r *ShoppingListRepo) ToggleChecked(id valueobject.ProductID) error {
	return r.col.Update(func(records []shoppingListRecord) ([]shoppingListRecord, error) {
		byID := indexShoppingList(records)
		if rec, ok := byID[id.String()]; ok {
			rec.Checked = !rec.Checked
			byID[id.String()] = rec
		}
		return sortedShoppingList(byID), nil
	})
}

// UpdateChecked fija el marcado explícitamente; no hace nada si no existe.
func (r *ShoppingListRepo) UpdateChecked(id valueobject.ProductID, checked bool) error {
	return r.col.Update(func(records []shoppingListRecord) ([]shoppingListRecord, error) {
		byID := indexShoppingList(records)
		if rec, ok := byID[id.String()]; ok {
			rec.Checked = checked
			byID[id.String()] = rec
		}
		return sortedShoppingList(byID), nil
	})
}

// GetCheckedItems devuelve solo las entradas marcadas.
func (r *ShoppingListRepo) GetCheckedItems() ([]entity.ShoppingListItem, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.ShoppingListItem, 0, len(all))
	for _, it := range all {
		if it.Checked {
			out = append(out, it)
		}
	}
	return out, nil
}

// Clear vacía la colección completa.
func (r *ShoppingListRepo) Clear() error {
	return r.col.Update(func([]shoppingListRecord) ([]shoppingListRecord, error) {
		return []shoppingListRecord{}, nil
	})
}

func indexShoppingList(records []shoppingListRecord) map[string]shoppingListRecord {
	byID := make(map[string]shoppingListRecord, len(records))
	for _, rec := range records {
		byID[rec.ProductID] = rec
	}
	return byID
}

func sortedShoppingList(byID map[string]shoppingListRecord) []shoppingListRecord {
	out := make([]shoppingListRecord, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
