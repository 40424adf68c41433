package memory

import (
	"fmt"
	"sync"

	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// ProductRepository almacén autoritativo de productos en memoria.
//
// Un RWMutex serializa todas las mutaciones; las lecturas devuelven copias,
// así que un lector nunca observa una transferencia a medias (stock
// descontado con la bodega sin actualizar) ni puede tocar el estado interno.
type ProductRepository struct {
	mu       sync.RWMutex
	products []entity.Product
	index    map[string]int // id → posición en products
}

// Verificación de cumplimiento de la interfaz
var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el repositorio con los productos semilla.
// El orden de seed es el orden estable de List.
func NewProductRepository(seed []entity.Product) *ProductRepository {
	r := &ProductRepository{
		products: make([]entity.Product, len(seed)),
		index:    make(map[string]int, len(seed)),
	}
	copy(r.products, seed)
	for i, p := range r.products {
		r.index[p.ID] = i
	}
	return r
}

// List devuelve una copia de todos los productos en orden estable.
func (r *ProductRepository) List() ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID devuelve una copia del producto, o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	p := r.products[i]
	return &p, nil
}

// Mutate aplica fn al producto bajo el lock de escritura. fn trabaja sobre
// una copia y el resultado solo se escribe de vuelta si fn devuelve nil:
// una mutación fallida deja el almacén byte a byte igual.
func (r *ProductRepository) Mutate(id string, fn func(p *entity.Product) error) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}

	updated := r.products[i]
	if err := fn(&updated); err != nil {
		return nil, err
	}
	r.products[i] = updated

	out := updated
	return &out, nil
}
