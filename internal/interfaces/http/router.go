package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pricing-api/internal/application/order"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC *order.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	orders := NewOrderHandler(deps.OrderUC)
	api.Post("/orders/quote", orders.Quote)
	api.Get("/orders/quote", orders.QuoteQuery)
}
