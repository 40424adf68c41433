package repository

import "github.com/jhoicas/stockboard-api/internal/domain/entity"

// ProductRepository puerto del almacén autoritativo de productos.
//
// Las lecturas devuelven copias: un snapshot consistente que nunca expone
// una mutación a medias ni permite modificar el almacén por fuera de Mutate.
type ProductRepository interface {
	// List devuelve una copia de todos los productos en orden estable.
	List() ([]entity.Product, error)

	// GetByID devuelve una copia del producto, o nil si no existe.
	GetByID(id string) (*entity.Product, error)

	// Mutate ejecuta fn sobre el producto identificado por id dentro de la
	// sección crítica del almacén (read-modify-write atómico por id,
	// equivalente en memoria a un SELECT FOR UPDATE). fn recibe una copia;
	// solo si fn devuelve nil el resultado se escribe de vuelta, de modo que
	// una mutación fallida deja el almacén exactamente igual.
	// Si el id no existe devuelve domain.ErrNotFound sin invocar fn.
	Mutate(id string, fn func(p *entity.Product) error) (*entity.Product, error)
}
