package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con fmt.Errorf("%w: ...") para agregar
// contexto (id o campo ofensivo); los callers distinguen con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrPreconditionFailed = errors.New("precondición no cumplida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
