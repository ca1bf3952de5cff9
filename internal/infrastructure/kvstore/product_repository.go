package kvstore

import (
	"sort"
	"strings"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre el almacén embebido.
type ProductRepo struct {
	col *Collection[productRecord]
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{col: NewCollection[productRecord](store, productsKey)}
}

// Save inserta o reemplaza el producto (upsert por ID).
func (r *ProductRepo) Save(p entity.Product) error {
	return r.col.Update(func(records []productRecord) ([]productRecord, error) {
		byID := indexProducts(records)
		byID[p.ID.String()] = toProductRecord(p)
		return sortedProducts(byID), nil
	})
}

// FindAll devuelve todos los productos.
func (r *ProductRepo) FindAll() ([]entity.Product, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		if p, ok := fromProductRecord(rec); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindByID devuelve el producto o nil si no existe.
func (r *ProductRepo) FindByID(id valueobject.ProductID) (*entity.Product, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id.String() {
			if p, ok := fromProductRecord(rec); ok {
				return &p, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

// FindByName busca por nombre exacto sin distinguir mayúsculas;
// nil si no existe.
func (r *ProductRepo) FindByName(name string) (*entity.Product, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(name)
	for _, rec := range records {
		if strings.EqualFold(rec.Name, target) {
			if p, ok := fromProductRecord(rec); ok {
				return &p, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

// Delete elimina el producto; falla con ErrProductNotFound si no existe.
func (r *ProductRepo) Delete(id valueobject.ProductID) error {
	return r.col.Update(func(records []productRecord) ([]productRecord, error) {
		byID := indexProducts(records)
		if _, ok := byID[id.String()]; !ok {
			return nil, domain.ErrProductNotFound
		}
		delete(byID, id.String())
		return sortedProducts(byID), nil
	})
}

func indexProducts(records []productRecord) map[string]productRecord {
	byID := make(map[string]productRecord, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	return byID
}

func sortedProducts(byID map[string]productRecord) []productRecord {
	out := make([]productRecord, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
