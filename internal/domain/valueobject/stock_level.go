package valueobject

import (
	"fmt"

	"github.com/jhoicas/despensa-api/internal/domain"
)

// StockLevel juicio del usuario sobre el stock restante, de mayor a menor:
// high, medium, low, empty. Es independiente de la cantidad numérica.
type StockLevel string

const (
	StockHigh   StockLevel = "high"
	StockMedium StockLevel = "medium"
	StockLow    StockLevel = "low"
	StockEmpty  StockLevel = "empty"
)

// StockLevelFromString valida y construye un nivel de stock.
func StockLevelFromString(s string) (StockLevel, error) {
	switch StockLevel(s) {
	case StockHigh, StockMedium, StockLow, StockEmpty:
		return StockLevel(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidStockLevel, s)
	}
}

// String devuelve la forma textual estable.
func (l StockLevel) String() string { return string(l) }
