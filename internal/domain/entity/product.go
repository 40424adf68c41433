package entity

// Product representa un SKU del inventario. Stock y Demand son enteros no
// negativos; Warehouse referencia siempre un Warehouse.Code existente.
// Solo el motor de mutaciones modifica Demand (updateDemand) y
// Stock/Warehouse (transferStock); ID, Name y SKU son inmutables.
type Product struct {
	ID        string
	Name      string
	SKU       string // código único
	Warehouse string // código de la bodega actual
	Stock     int
	Demand    int
}
