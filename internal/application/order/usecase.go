// Package order orquesta un intento de pedido: valida la entrada cruda, calcula el total
// y reporta el resultado. Los errores de validación nunca salen de este paquete.
package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"

	"github.com/jhoicas/pricing-api/internal/application/dto"
	"github.com/jhoicas/pricing-api/internal/domain"
	"github.com/jhoicas/pricing-api/internal/domain/pricing"
	"github.com/jhoicas/pricing-api/pkg/logger"
)

// ErrUnexpected envuelve fallos que no son de validación (p. ej. un panic recuperado).
var ErrUnexpected = errors.New("unexpected error")

const codeInternal = "INTERNAL"

// UseCase caso de uso de pedidos en una sola moneda.
type UseCase struct {
	log  *logger.Logger
	unit currency.Unit
}

// NewUseCase construye el caso de uso. Un logger nil descarta los mensajes.
func NewUseCase(log *logger.Logger, unit currency.Unit) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{log: log, unit: unit}
}

// RunOrder valida rawAmount y rawQuantity, calcula el total y lo reporta.
// Devuelve false (sin resultado) cuando alguna validación falla.
func (uc *UseCase) RunOrder(rawAmount, rawQuantity float64) (pricing.MonetaryAmount, bool) {
	_, total, err := uc.attempt(rawAmount, rawQuantity)
	if err != nil {
		return pricing.MonetaryAmount{}, false
	}
	return total, true
}

// Quote ejecuta el mismo flujo que RunOrder y devuelve el resultado para transporte.
func (uc *UseCase) Quote(in dto.QuoteRequest) dto.QuoteResponse {
	orderID, total, err := uc.attempt(in.Price, in.Quantity)
	out := dto.QuoteResponse{
		OrderID:  orderID,
		Currency: uc.unit.String(),
	}
	if err != nil {
		out.Status = dto.QuoteStatusFailed
		out.Code, out.Message = Describe(err)
		return out
	}
	d := total.Decimal()
	out.Status = dto.QuoteStatusOK
	out.Total = &d
	out.Message = fmt.Sprintf("calculated bill: %s, prepare check-out", total)
	return out
}

// Describe traduce un error del flujo a un código estable y un mensaje legible.
func Describe(err error) (code, message string) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind.Code(), "transaction failed: " + vErr.Kind.String()
	}
	return codeInternal, "an unknown error occurred"
}

func (uc *UseCase) attempt(rawAmount, rawQuantity float64) (string, pricing.MonetaryAmount, error) {
	orderID := uuid.NewString()
	log := uc.log.With().Str("order_id", orderID).Logger()

	log.Info().
		Float64("raw_amount", rawAmount).
		Float64("raw_quantity", rawQuantity).
		Msg("attempting order")

	total, err := uc.compute(rawAmount, rawQuantity)
	if err != nil {
		report(log, err)
		return orderID, pricing.MonetaryAmount{}, err
	}

	log.Info().
		Str("total", total.Decimal().String()).
		Str("currency", total.Currency().String()).
		Msg("calculated bill, prepare check-out")
	return orderID, total, nil
}

func (uc *UseCase) compute(rawAmount, rawQuantity float64) (total pricing.MonetaryAmount, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	amount, err := pricing.NewMonetaryAmountFloat(rawAmount, uc.unit)
	if err != nil {
		return pricing.MonetaryAmount{}, fmt.Errorf("validar importe: %w", err)
	}
	qty, err := pricing.NewQuantity(rawQuantity)
	if err != nil {
		return pricing.MonetaryAmount{}, fmt.Errorf("validar cantidad: %w", err)
	}
	return pricing.ComputeTotal(amount, qty), nil
}

func report(log zerolog.Logger, err error) {
	_, message := Describe(err)
	if errors.Is(err, domain.ErrValidation) {
		log.Warn().Err(err).Msg(message)
		return
	}
	log.Error().Err(err).Msg(message)
}
