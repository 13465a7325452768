package dto

import "github.com/shopspring/decimal"

// Estados de QuoteResponse.
const (
	QuoteStatusOK     = "ok"
	QuoteStatusFailed = "failed"
)

// QuoteRequest entrada cruda (sin validar) para cotizar un pedido.
type QuoteRequest struct {
	Price    float64 `json:"price" query:"price"`
	Quantity float64 `json:"quantity" query:"quantity"`
}

// QuoteResponse resultado de un intento de pedido. Total es nil cuando falla la validación.
type QuoteResponse struct {
	OrderID  string           `json:"order_id"`
	Status   string           `json:"status"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Currency string           `json:"currency"`
	Code     string           `json:"code,omitempty"`
	Message  string           `json:"message"`
}

// OK indica si el pedido produjo un total.
func (r QuoteResponse) OK() bool {
	return r.Status == QuoteStatusOK
}
