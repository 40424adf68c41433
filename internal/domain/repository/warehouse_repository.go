package repository

import "github.com/jhoicas/stockboard-api/internal/domain/entity"

// WarehouseRepository puerto de las bodegas (datos de referencia, solo lectura).
type WarehouseRepository interface {
	// List devuelve una copia de todas las bodegas en orden estable.
	List() ([]entity.Warehouse, error)

	// GetByCode devuelve una copia de la bodega, o nil si no existe.
	GetByCode(code string) (*entity.Warehouse, error)
}
