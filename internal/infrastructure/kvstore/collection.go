package kvstore

import (
	"encoding/json"
	"fmt"
)

// Collection serializa una colección lógica como arreglo JSON bajo una
// clave del almacén. La lectura es total: clave ausente, valor vacío o
// JSON corrupto se tratan como colección vacía, nunca como error.
type Collection[T any] struct {
	store *Store
	key   string
}

// NewCollection construye el cliente de una colección.
func NewCollection[T any](store *Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Load devuelve la colección completa.
func (c *Collection[T]) Load() ([]T, error) {
	var items []T
	err := c.store.view(c.key, func(raw []byte) {
		items = decode[T](raw)
	})
	if err != nil {
		return nil, fmt.Errorf("leer colección %s: %w", c.key, err)
	}
	return items, nil
}

// Update aplica una lectura-modificación-escritura atómica: carga el
// arreglo, ejecuta fn en memoria y persiste el resultado completo.
// Si fn falla no se escribe nada.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	err := c.store.update(c.key, func(raw []byte) ([]byte, error) {
		items, err := fn(decode[T](raw))
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return json.Marshal(items)
	})
	if err != nil {
		return fmt.Errorf("escribir colección %s: %w", c.key, err)
	}
	return nil
}

func decode[T any](raw []byte) []T {
	if len(raw) == 0 {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Dato corrupto = "sin datos"; la capa de lectura es total.
		return nil
	}
	return items
}
