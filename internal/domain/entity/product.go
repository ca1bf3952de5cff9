package entity

import (
	"strings"

	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/valueobject"
)

// Product producto de la despensa del hogar.
// Inmutable una vez construido: "actualizar" es construir una instancia
// nueva y hacer upsert por ID.
type Product struct {
	ID       valueobject.ProductID
	Name     string
	UnitType valueobject.UnitType
}

// NewProduct construye un producto validando el nombre
// (recortado, mínimo 2 caracteres).
func NewProduct(id valueobject.ProductID, name string, unit valueobject.UnitType) (Product, error) {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < 2 {
		return Product{}, domain.ErrInvalidProductName
	}
	return Product{ID: id, Name: trimmed, UnitType: unit}, nil
}
