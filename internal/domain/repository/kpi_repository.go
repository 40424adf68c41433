package repository

import "github.com/jhoicas/stockboard-api/internal/domain/entity"

// KPIRepository puerto de la serie diaria de KPIs (solo lectura).
// En producción un job externo de agregación alimentaría la serie; aquí se
// genera sintética al arrancar.
type KPIRepository interface {
	// Series devuelve una copia de la serie completa, ascendente por fecha.
	Series() ([]entity.KPISample, error)
}
