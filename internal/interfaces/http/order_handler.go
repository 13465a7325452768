package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pricing-api/internal/application/dto"
	"github.com/jhoicas/pricing-api/internal/application/order"
)

// OrderHandler maneja las peticiones HTTP de cotización de pedidos.
type OrderHandler struct {
	uc *order.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *order.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Precio y cantidad sin validar"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.QuoteResponse
// @Router       /api/orders/quote [post]
func (h *OrderHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return respondQuote(c, h.uc.Quote(in))
}

// QuoteQuery godoc
// @Summary      Cotizar pedido (query string)
// @Tags         orders
// @Produce      json
// @Param        price     query  number  true  "Precio unitario"
// @Param        quantity  query  number  true  "Cantidad"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.QuoteResponse
// @Router       /api/orders/quote [get]
func (h *OrderHandler) QuoteQuery(c *fiber.Ctx) error {
	if c.Query("price") == "" || c.Query("quantity") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price y quantity son requeridos"})
	}
	var in dto.QuoteRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "price y quantity deben ser numéricos"})
	}
	return respondQuote(c, h.uc.Quote(in))
}

func respondQuote(c *fiber.Ctx, out dto.QuoteResponse) error {
	switch {
	case out.OK():
		return c.JSON(out)
	case out.Code == "INTERNAL":
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	default:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out)
	}
}
