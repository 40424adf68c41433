package inventory

import (
	"strings"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/inventory"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// QueryUseCase listado de productos con filtros conjuntivos (búsqueda
// libre, bodega y estado). Solo lectura: trabaja sobre el snapshot que
// devuelve el repositorio y nunca lo modifica.
type QueryUseCase struct {
	products repository.ProductRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(products repository.ProductRepository) *QueryUseCase {
	return &QueryUseCase{products: products}
}

// List devuelve los productos que pasan todos los filtros presentes.
// Sin coincidencias devuelve un slice vacío, nunca error.
func (uc *QueryUseCase) List(filter dto.ProductFilter) ([]entity.Product, error) {
	all, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	status := inventory.Status(filter.Status)
	filterByStatus := filter.Status != "" && filter.Status != inventory.StatusAll

	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if filter.Warehouse != "" && p.Warehouse != filter.Warehouse {
			continue
		}
		if filterByStatus && inventory.Classify(p.Stock, p.Demand) != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// matchesSearch: coincide si el término aparece como substring (en
// minúsculas) en el nombre, el SKU o el id.
func matchesSearch(p entity.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.SKU), search) ||
		strings.Contains(strings.ToLower(p.ID), search)
}
