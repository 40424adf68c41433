package inventory

import (
	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
)

// SummaryUseCase agregados del dashboard (stock total, demanda total y fill
// rate) sobre el mismo conjunto filtrado que ve el listado.
type SummaryUseCase struct {
	query *QueryUseCase
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(query *QueryUseCase) *SummaryUseCase {
	return &SummaryUseCase{query: query}
}

// Summarize filtra con los mismos criterios del listado y agrega.
func (uc *SummaryUseCase) Summarize(filter dto.ProductFilter) (*dto.InventorySummary, error) {
	products, err := uc.query.List(filter)
	if err != nil {
		return nil, err
	}
	return uc.aggregate(products), nil
}

// aggregate suma stock y demanda y calcula el fill rate con el servicio de
// dominio. Conjunto vacío → {0, 0, 0}.
func (uc *SummaryUseCase) aggregate(products []entity.Product) *dto.InventorySummary {
	summary := &dto.InventorySummary{}
	for _, p := range products {
		summary.TotalStock += p.Stock
		summary.TotalDemand += p.Demand
	}
	summary.FillRate = inventory.FillRate(products).Round(2).InexactFloat64()
	return summary
}
