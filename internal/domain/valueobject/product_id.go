package valueobject

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// ProductID identifica un producto (UUID en formato string).
// Inmutable; igualdad por valor.
type ProductID struct {
	value string
}

// NewProductID genera un ProductID nuevo (UUID v4).
func NewProductID() ProductID {
	return ProductID{value: uuid.New().String()}
}

// ProductIDFromString valida y construye un ProductID desde un string UUID.
func ProductIDFromString(s string) (ProductID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return ProductID{}, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, s)
	}
	return ProductID{value: s}, nil
}

// String devuelve la representación UUID.
func (id ProductID) String() string { return id.value }

// Equals compara por valor.
func (id ProductID) Equals(other ProductID) bool { return id.value == other.value }

// IsZero indica si el id no fue inicializado.
func (id ProductID) IsZero() bool { return id.value == "" }
