package order_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"

	"github.com/jhoicas/pricing-api/internal/application/dto"
	"github.com/jhoicas/pricing-api/internal/application/order"
	"github.com/jhoicas/pricing-api/internal/domain"
	"github.com/jhoicas/pricing-api/pkg/logger"
)

// newUseCase devuelve el caso de uso en EUR y el buffer donde escribe su logger (JSON).
func newUseCase(t *testing.T) (*order.UseCase, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf})
	return order.NewUseCase(log, currency.EUR), &buf
}

// ── Escenarios RunOrder ───────────────────────────────────────────────────────

func TestRunOrder_Valido(t *testing.T) {
	uc, buf := newUseCase(t)

	total, ok := uc.RunOrder(10, 3)
	require.True(t, ok)
	assert.Equal(t, float64(30), total.Float64())
	assert.Equal(t, currency.EUR, total.Currency())
	assert.Contains(t, buf.String(), "attempting order")
	assert.Contains(t, buf.String(), "calculated bill")
}

func TestRunOrder_CantidadNegativa(t *testing.T) {
	uc, buf := newUseCase(t)

	total, ok := uc.RunOrder(10, -3)
	assert.False(t, ok)
	assert.True(t, total.IsZero())
	assert.Contains(t, buf.String(), "transaction failed: negative quantity")
	assert.NotContains(t, buf.String(), "calculated bill")
}

func TestRunOrder_ImporteNegativo(t *testing.T) {
	uc, buf := newUseCase(t)

	_, ok := uc.RunOrder(-5, 2)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "transaction failed: negative amount")
}

func TestRunOrder_CantidadNoEntera(t *testing.T) {
	uc, buf := newUseCase(t)

	_, ok := uc.RunOrder(10, 2.5)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "transaction failed: non-integer quantity")
}

// El importe se valida antes que la cantidad: con ambos inválidos se reporta el importe.
func TestRunOrder_ImporteSeValidaPrimero(t *testing.T) {
	uc, buf := newUseCase(t)

	_, ok := uc.RunOrder(-1, -1)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "negative amount")
	assert.NotContains(t, buf.String(), "negative quantity")
}

func TestRunOrder_LoggerNil(t *testing.T) {
	uc := order.NewUseCase(nil, currency.EUR)
	total, ok := uc.RunOrder(2.5, 4)
	require.True(t, ok)
	assert.Equal(t, float64(10), total.Float64())
}

// ── Quote ─────────────────────────────────────────────────────────────────────

func TestQuote_Exito(t *testing.T) {
	uc := order.NewUseCase(nil, currency.USD)

	out := uc.Quote(dto.QuoteRequest{Price: 19.99, Quantity: 4})
	require.True(t, out.OK())
	require.NotNil(t, out.Total)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("79.96")))
	assert.Equal(t, "USD", out.Currency)
	assert.NotEmpty(t, out.OrderID)
	assert.Empty(t, out.Code)
}

func TestQuote_FalloSinTotal(t *testing.T) {
	uc := order.NewUseCase(nil, currency.EUR)

	out := uc.Quote(dto.QuoteRequest{Price: 10, Quantity: -3})
	assert.False(t, out.OK())
	assert.Equal(t, dto.QuoteStatusFailed, out.Status)
	assert.Nil(t, out.Total)
	assert.Equal(t, "NEGATIVE_QUANTITY", out.Code)
	assert.Equal(t, "transaction failed: negative quantity", out.Message)
}

func TestQuote_OrderIDUnicoPorIntento(t *testing.T) {
	uc := order.NewUseCase(nil, currency.EUR)
	a := uc.Quote(dto.QuoteRequest{Price: 1, Quantity: 1})
	b := uc.Quote(dto.QuoteRequest{Price: 1, Quantity: 1})
	assert.NotEqual(t, a.OrderID, b.OrderID)
}

// ── Describe ──────────────────────────────────────────────────────────────────

func TestDescribe_ErrorDesconocido(t *testing.T) {
	code, msg := order.Describe(errors.New("boom"))
	assert.Equal(t, "INTERNAL", code)
	assert.Equal(t, "an unknown error occurred", msg)

	code, _ = order.Describe(order.ErrUnexpected)
	assert.Equal(t, "INTERNAL", code)
}

func TestDescribe_ErrorEnvuelto(t *testing.T) {
	err := errors.Join(errors.New("contexto"), domain.NewValidationError(domain.NonIntegerQuantity, "quantity", 2.5))
	code, msg := order.Describe(err)
	assert.Equal(t, "NON_INTEGER_QUANTITY", code)
	assert.Equal(t, "transaction failed: non-integer quantity", msg)
}
