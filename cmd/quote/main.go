// quote valida precio y cantidad desde la línea de comandos y calcula el total.
//
// Uso: go run ./cmd/quote <precio> <cantidad>
// Sin argumentos ejecuta los pedidos de demostración (10x3, 10x-3, -5x2, 10x2.5).
// Código de salida 1 si algún pedido no produce total, 2 si los argumentos no son numéricos.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/pricing-api/internal/application/order"
	"github.com/jhoicas/pricing-api/pkg/config"
	"github.com/jhoicas/pricing-api/pkg/logger"
)

type pedido struct {
	price, quantity float64
}

var demo = []pedido{
	{10, 3},
	{10, -3},
	{-5, 2},
	{10, 2.5},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	uc := order.NewUseCase(log, cfg.Pricing.Currency)

	pedidos := demo
	switch len(os.Args) {
	case 1:
	case 3:
		p, err := parseArgs(os.Args[1], os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Argumentos: %v\n", err)
			os.Exit(2)
		}
		pedidos = []pedido{p}
	default:
		fmt.Fprintln(os.Stderr, "uso: quote [<precio> <cantidad>]")
		os.Exit(2)
	}

	failed := 0
	for _, p := range pedidos {
		total, ok := uc.RunOrder(p.price, p.quantity)
		if !ok {
			failed++
			continue
		}
		fmt.Println(total)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func parseArgs(rawPrice, rawQty string) (pedido, error) {
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil {
		return pedido{}, fmt.Errorf("precio %q: %w", rawPrice, err)
	}
	qty, err := strconv.ParseFloat(rawQty, 64)
	if err != nil {
		return pedido{}, fmt.Errorf("cantidad %q: %w", rawQty, err)
	}
	return pedido{price: price, quantity: qty}, nil
}
