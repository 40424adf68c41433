package inventory

import (
	"fmt"

	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// MutationUseCase las dos mutaciones del inventario: actualización de
// demanda y transferencia de stock. Cada operación valida sus
// precondiciones en orden fijo (la primera que falla determina el error) y
// aplica el efecto completo o ninguno, dentro de la sección crítica del
// repositorio (Mutate).
type MutationUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewMutationUseCase construye el caso de uso.
func NewMutationUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
) *MutationUseCase {
	return &MutationUseCase{products: products, warehouses: warehouses}
}

// UpdateDemand fija la demanda del producto. Precondiciones en orden:
//  1. el producto existe                → ErrNotFound
//  2. demand >= 0                       → ErrInvalidInput
//
// Stock y Warehouse quedan intactos. El tope de 10000 del formulario es
// validación de presentación: aquí no se asume ni se impone.
func (uc *MutationUseCase) UpdateDemand(id string, demand int) (*entity.Product, error) {
	return uc.products.Mutate(id, func(p *entity.Product) error {
		if demand < 0 {
			return fmt.Errorf("%w: la demanda no puede ser negativa (%d)", domain.ErrInvalidInput, demand)
		}
		p.Demand = demand
		return nil
	})
}

// TransferStock transfiere qty unidades del producto desde la bodega from
// hacia to. Precondiciones en orden:
//  1. el producto existe                → ErrNotFound
//  2. su bodega actual es from          → ErrPreconditionFailed
//  3. qty > 0                           → ErrInvalidInput
//  4. stock >= qty                      → ErrInsufficientStock
//  5. la bodega destino existe          → ErrNotFound
//
// Efecto (todo o nada): stock -= qty y warehouse = to.
//
// Ojo con la semántica: el registro tiene una sola bodega, así que el saldo
// restante completo queda ubicado en la bodega destino aunque qty sea
// parcial. Un split real del lote en dos saldos por ubicación sería otro
// modelo de datos; este comportamiento es el que espera el dashboard.
func (uc *MutationUseCase) TransferStock(id, from, to string, qty int) (*entity.Product, error) {
	return uc.products.Mutate(id, func(p *entity.Product) error {
		if p.Warehouse != from {
			return fmt.Errorf("%w: el producto %s no está en la bodega %s", domain.ErrPreconditionFailed, id, from)
		}
		if qty <= 0 {
			return fmt.Errorf("%w: la cantidad a transferir debe ser positiva (%d)", domain.ErrInvalidInput, qty)
		}
		if p.Stock < qty {
			return fmt.Errorf("%w: disponibles %d, solicitadas %d", domain.ErrInsufficientStock, p.Stock, qty)
		}
		dest, err := uc.warehouses.GetByCode(to)
		if err != nil {
			return err
		}
		if dest == nil {
			return fmt.Errorf("%w: bodega destino %s", domain.ErrNotFound, to)
		}
		p.Stock -= qty
		p.Warehouse = to
		return nil
	})
}
