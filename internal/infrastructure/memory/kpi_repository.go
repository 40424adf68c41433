package memory

import (
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// KPIRepository serie diaria de KPIs en memoria. Inmutable tras la
// construcción: en producción la alimentaría un job de agregación diario.
type KPIRepository struct {
	series []entity.KPISample
}

// Verificación de cumplimiento de la interfaz
var _ repository.KPIRepository = (*KPIRepository)(nil)

// NewKPIRepository construye el repositorio con la serie semilla
// (ascendente por fecha, una muestra por día).
func NewKPIRepository(seed []entity.KPISample) *KPIRepository {
	r := &KPIRepository{series: make([]entity.KPISample, len(seed))}
	copy(r.series, seed)
	return r
}

// Series devuelve una copia de la serie completa.
func (r *KPIRepository) Series() ([]entity.KPISample, error) {
	out := make([]entity.KPISample, len(r.series))
	copy(out, r.series)
	return out, nil
}
