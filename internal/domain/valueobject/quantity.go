package valueobject

import (
	"fmt"

	"github.com/jhoicas/despensa-api/internal/domain"
)

// Quantity cantidad de inventario: entero no negativo, sin tope superior.
// Inmutable; las operaciones devuelven un valor nuevo.
type Quantity struct {
	value int
}

// NewQuantity construye una cantidad; falla si es negativa.
func NewQuantity(v int) (Quantity, error) {
	if v < 0 {
		return Quantity{}, fmt.Errorf("%w: %d", domain.ErrNegativeQuantity, v)
	}
	return Quantity{value: v}, nil
}

// Value devuelve el entero subyacente.
func (q Quantity) Value() int { return q.value }

// Add suma dos cantidades (el resultado nunca es negativo).
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// IsPositive indica si la cantidad es mayor a cero.
func (q Quantity) IsPositive() bool { return q.value > 0 }
