package valueobject

import (
	"fmt"

	"github.com/jhoicas/despensa-api/internal/domain"
)

// UnitType unidad de medida de un producto (conjunto cerrado).
type UnitType string

const (
	UnitUnits  UnitType = "units"
	UnitKg     UnitType = "kg"
	UnitLiters UnitType = "liters"
)

// UnitTypeFromString valida y construye una unidad de medida.
func UnitTypeFromString(s string) (UnitType, error) {
	switch UnitType(s) {
	case UnitUnits, UnitKg, UnitLiters:
		return UnitType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidUnit, s)
	}
}

// String devuelve la forma textual estable.
func (u UnitType) String() string { return string(u) }
