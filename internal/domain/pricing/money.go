// Package pricing contiene los valores de dominio validados del cálculo de precios.
// Los tipos exponen su valor solo por lectura: la única forma de obtener uno fuera del
// paquete es su constructor, que aplica la invariante una sola vez.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/jhoicas/pricing-api/internal/domain"
)

// DefaultCurrency moneda usada por NewMonetaryAmount.
var DefaultCurrency = currency.EUR

// MonetaryAmount importe no negativo etiquetado con su moneda.
type MonetaryAmount struct {
	value decimal.Decimal
	unit  currency.Unit
}

// NewMonetaryAmount valida un importe crudo en DefaultCurrency.
func NewMonetaryAmount(raw float64) (MonetaryAmount, error) {
	return NewMonetaryAmountFloat(raw, DefaultCurrency)
}

// NewMonetaryAmountFloat valida un importe crudo en la moneda indicada.
func NewMonetaryAmountFloat(raw float64, unit currency.Unit) (MonetaryAmount, error) {
	if math.IsNaN(raw) {
		return MonetaryAmount{}, domain.NewValidationError(domain.NonFiniteValue, "amount", raw)
	}
	if raw < 0 {
		return MonetaryAmount{}, domain.NewValidationError(domain.NegativeAmount, "amount", raw)
	}
	if math.IsInf(raw, 1) {
		return MonetaryAmount{}, domain.NewValidationError(domain.NonFiniteValue, "amount", raw)
	}
	return MonetaryAmount{value: decimal.NewFromFloat(raw), unit: unit}, nil
}

// NewMonetaryAmountIn valida un importe decimal exacto (p. ej. leído de JSON).
func NewMonetaryAmountIn(raw decimal.Decimal, unit currency.Unit) (MonetaryAmount, error) {
	if raw.IsNegative() {
		return MonetaryAmount{}, domain.NewValidationError(domain.NegativeAmount, "amount", raw.InexactFloat64())
	}
	return MonetaryAmount{value: raw, unit: unit}, nil
}

func (m MonetaryAmount) Decimal() decimal.Decimal { return m.value }
func (m MonetaryAmount) Currency() currency.Unit  { return m.unit }
func (m MonetaryAmount) IsZero() bool             { return m.value.IsZero() }

// Float64 devuelve el valor como float64 (exacto para importes construidos desde float64).
func (m MonetaryAmount) Float64() float64 {
	return m.value.InexactFloat64()
}

// String formatea el importe como "30 EUR".
func (m MonetaryAmount) String() string {
	return m.value.String() + " " + m.unit.String()
}
