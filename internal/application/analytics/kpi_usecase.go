package analytics

import (
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// Rangos de ventana aceptados por la consulta de KPIs.
const (
	Range7d  = "7d"
	Range14d = "14d"
	Range30d = "30d"
)

// KPIUseCase recorte de la serie diaria de KPIs a la ventana final
// solicitada (trailing window).
type KPIUseCase struct {
	kpis repository.KPIRepository
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(kpis repository.KPIRepository) *KPIUseCase {
	return &KPIUseCase{kpis: kpis}
}

// Window devuelve las últimas N muestras de la serie según el rango
// (7d/14d/30d; cualquier otro valor cae en 30d), conservando el orden
// ascendente. Si la serie es más corta que N devuelve todo lo disponible.
func (uc *KPIUseCase) Window(rangeKey string) ([]entity.KPISample, error) {
	series, err := uc.kpis.Series()
	if err != nil {
		return nil, err
	}

	days := daysForRange(rangeKey)
	if len(series) > days {
		series = series[len(series)-days:]
	}
	return series, nil
}

func daysForRange(rangeKey string) int {
	switch rangeKey {
	case Range7d:
		return 7
	case Range14d:
		return 14
	case Range30d:
		return 30
	default:
		return 30
	}
}
