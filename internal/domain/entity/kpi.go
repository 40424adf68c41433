package entity

import "time"

// KPISample es el agregado diario de stock y demanda. La serie es
// cronológicamente ascendente, una muestra por día calendario, sin huecos,
// dentro de la ventana de retención configurada.
type KPISample struct {
	Date   time.Time
	Stock  int
	Demand int
}
