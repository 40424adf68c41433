package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// FillRate calcula el porcentaje de la demanda agregada cubierta por el
// stock (servicio de dominio).
//
//	FillRate = 100 * Σ min(stock_i, demand_i) / Σ demand_i
//
// El aporte de cada producto se topa en su propia demanda antes de sumar:
// el sobre-stock de un ítem no puede enmascarar el faltante de otro.
// Demanda total cero → 0.
func FillRate(products []entity.Product) decimal.Decimal {
	totalDemand := int64(0)
	totalFilled := int64(0)
	for _, p := range products {
		totalDemand += int64(p.Demand)
		filled := p.Stock
		if p.Demand < filled {
			filled = p.Demand
		}
		totalFilled += int64(filled)
	}
	if totalDemand <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(totalFilled).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(totalDemand))
}
