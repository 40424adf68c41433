package memory

import (
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// WarehouseRepository bodegas en memoria. Datos de referencia inmutables
// tras la construcción, por eso no necesita lock.
type WarehouseRepository struct {
	warehouses []entity.Warehouse
	byCode     map[string]entity.Warehouse
}

// Verificación de cumplimiento de la interfaz
var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)

// NewWarehouseRepository construye el repositorio con las bodegas semilla.
func NewWarehouseRepository(seed []entity.Warehouse) *WarehouseRepository {
	r := &WarehouseRepository{
		warehouses: make([]entity.Warehouse, len(seed)),
		byCode:     make(map[string]entity.Warehouse, len(seed)),
	}
	copy(r.warehouses, seed)
	for _, w := range r.warehouses {
		r.byCode[w.Code] = w
	}
	return r
}

// List devuelve una copia de todas las bodegas en orden estable.
func (r *WarehouseRepository) List() ([]entity.Warehouse, error) {
	out := make([]entity.Warehouse, len(r.warehouses))
	copy(out, r.warehouses)
	return out, nil
}

// GetByCode devuelve una copia de la bodega, o nil si no existe.
func (r *WarehouseRepository) GetByCode(code string) (*entity.Warehouse, error) {
	w, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	return &w, nil
}
