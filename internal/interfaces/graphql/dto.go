package graphql

import (
	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// Representaciones de salida del boundary GraphQL. Los tags json guían al
// resolver por defecto de graphql-go.

type productOut struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
}

type warehouseOut struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type kpiOut struct {
	Date   string `json:"date"` // fecha calendario ISO (YYYY-MM-DD)
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

type summaryOut struct {
	TotalStock  int     `json:"totalStock"`
	TotalDemand int     `json:"totalDemand"`
	FillRate    float64 `json:"fillRate"`
}

func toProductOut(p entity.Product) productOut {
	return productOut{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
	}
}

func toProductList(products []entity.Product) []productOut {
	out := make([]productOut, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOut(p))
	}
	return out
}

func toWarehouseList(warehouses []entity.Warehouse) []warehouseOut {
	out := make([]warehouseOut, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, warehouseOut{Code: w.Code, Name: w.Name, City: w.City, Country: w.Country})
	}
	return out
}

func toKPIList(series []entity.KPISample) []kpiOut {
	out := make([]kpiOut, 0, len(series))
	for _, s := range series {
		out = append(out, kpiOut{Date: s.Date.Format("2006-01-02"), Stock: s.Stock, Demand: s.Demand})
	}
	return out
}

func toSummaryOut(s *dto.InventorySummary) summaryOut {
	return summaryOut{TotalStock: s.TotalStock, TotalDemand: s.TotalDemand, FillRate: s.FillRate}
}
