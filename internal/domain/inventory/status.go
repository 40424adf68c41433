package inventory

// Status clasificación derivada de salud de un producto. Nunca se persiste:
// se calcula siempre desde Stock y Demand actuales, así queda consistente
// con la última mutación.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusLow      Status = "low"
	StatusCritical Status = "critical"
)

// StatusAll valor centinela del filtro de estado: no filtra nada.
const StatusAll = "all"

// Classify implementa la regla de clasificación (servicio de dominio).
// stock > demand → healthy; stock == demand → low; stock < demand → critical.
// Total y pura; es la única definición de la regla en todo el sistema.
func Classify(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// IsValid indica si s es uno de los tres estados conocidos.
func (s Status) IsValid() bool {
	return s == StatusHealthy || s == StatusLow || s == StatusCritical
}
