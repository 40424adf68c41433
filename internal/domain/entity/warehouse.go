package entity

// Warehouse representa una bodega física. Datos de referencia estáticos:
// el núcleo nunca los modifica.
type Warehouse struct {
	Code    string // identificador único (ej. BLR-A)
	Name    string
	City    string
	Country string
}
