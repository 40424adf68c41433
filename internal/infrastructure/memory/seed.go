package memory

import (
	"math/rand"
	"time"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// Datos semilla del dashboard. Los ids y saldos coinciden con el dataset
// mock del frontend para que los dos extremos hablen de lo mismo.

// SeedProducts devuelve los productos iniciales del almacén.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Aluminum Plate 3mm", SKU: "ALP-03-100", Warehouse: "BLR-A", Stock: 200, Demand: 150},
		{ID: "P-1006", Name: "Rubber Gasket", SKU: "RUB-05-200", Warehouse: "PNQ-C", Stock: 300, Demand: 250},
		{ID: "P-1007", Name: "Copper Wire 2.5mm", SKU: "COP-25-500", Warehouse: "DEL-B", Stock: 75, Demand: 100},
		{ID: "P-1008", Name: "Plastic Housing", SKU: "PLA-10-50", Warehouse: "BLR-A", Stock: 40, Demand: 60},
		{ID: "P-1009", Name: "Steel Rod 10mm", SKU: "STE-10-100", Warehouse: "PNQ-C", Stock: 120, Demand: 90},
		{ID: "P-1010", Name: "Ceramic Capacitor", SKU: "CER-100-1000", Warehouse: "DEL-B", Stock: 500, Demand: 450},
	}
}

// SeedWarehouses devuelve las bodegas de referencia.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "BLR-A", Name: "Bangalore Central", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune Distribution", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi North", City: "Delhi", Country: "India"},
		{Code: "MUM-D", Name: "Mumbai Port", City: "Mumbai", Country: "India"},
		{Code: "CHN-E", Name: "Chennai South", City: "Chennai", Country: "India"},
	}
}

// GenerateKPISeries genera la serie sintética de los últimos days días,
// terminando hoy, ascendente y contigua. Stock y demanda oscilan alrededor
// de una base (1500/1200) con variación acotada, nunca negativos.
func GenerateKPISeries(days int) []entity.KPISample {
	const (
		baseStock  = 1500
		baseDemand = 1200
	)

	today := time.Now().Truncate(24 * time.Hour)
	series := make([]entity.KPISample, 0, days)
	for i := days - 1; i >= 0; i-- {
		stock := baseStock + rand.Intn(201) - 100
		demand := baseDemand + rand.Intn(151) - 75
		if stock < 0 {
			stock = 0
		}
		if demand < 0 {
			demand = 0
		}
		series = append(series, entity.KPISample{
			Date:   today.AddDate(0, 0, -i),
			Stock:  stock,
			Demand: demand,
		})
	}
	return series
}
