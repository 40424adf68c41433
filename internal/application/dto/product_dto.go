package dto

// ProductFilter filtros conjuntivos del listado de productos. Un campo
// vacío no filtra; Status además acepta el centinela "all" como no-filtro.
type ProductFilter struct {
	Search    string // substring, sin distinción de mayúsculas, sobre name/sku/id
	Warehouse string // igualdad exacta contra el código de bodega
	Status    string // healthy | low | critical | all
}
