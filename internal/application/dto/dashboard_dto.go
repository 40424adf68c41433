package dto

// InventorySummary agregados sobre el conjunto filtrado de productos.
// FillRate es porcentaje (0-100) con la demanda como tope por ítem.
type InventorySummary struct {
	TotalStock  int
	TotalDemand int
	FillRate    float64
}
