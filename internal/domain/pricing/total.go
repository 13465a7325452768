package pricing

// ComputeTotal multiplica un importe por una cantidad, en la moneda del importe.
// No valida: ambos argumentos ya cumplen sus invariantes por construcción.
func ComputeTotal(amount MonetaryAmount, qty Quantity) MonetaryAmount {
	return MonetaryAmount{
		value: amount.value.Mul(qty.Decimal()),
		unit:  amount.unit,
	}
}
