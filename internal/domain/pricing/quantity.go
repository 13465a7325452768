package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pricing-api/internal/domain"
)

// maxExactInteger mayor entero que float64 representa sin pérdida (2^53).
const maxExactInteger = 1 << 53

// Quantity cantidad entera no negativa de unidades.
type Quantity struct {
	value int64
}

// NewQuantity valida una cantidad cruda. El signo se valida antes que la parte
// fraccionaria: -2.5 se reporta como cantidad negativa.
func NewQuantity(raw float64) (Quantity, error) {
	switch {
	case math.IsNaN(raw):
		return Quantity{}, domain.NewValidationError(domain.NonFiniteValue, "quantity", raw)
	case raw < 0:
		return Quantity{}, domain.NewValidationError(domain.NegativeQuantity, "quantity", raw)
	case math.IsInf(raw, 1):
		return Quantity{}, domain.NewValidationError(domain.NonFiniteValue, "quantity", raw)
	case raw != math.Trunc(raw), raw > maxExactInteger:
		return Quantity{}, domain.NewValidationError(domain.NonIntegerQuantity, "quantity", raw)
	}
	return Quantity{value: int64(raw)}, nil
}

func (q Quantity) Int64() int64 { return q.value }

// Decimal devuelve la cantidad como decimal para operar con importes.
func (q Quantity) Decimal() decimal.Decimal {
	return decimal.NewFromInt(q.value)
}

func (q Quantity) String() string {
	return q.Decimal().String()
}
