package graphql

import (
	"errors"

	"github.com/jhoicas/stockboard-api/internal/domain"
)

// Códigos expuestos en extensions.code para que el cliente pueda ramificar
// por tipo de error sin parsear el mensaje.
const (
	codeNotFound           = "NOT_FOUND"
	codeInvalidArgument    = "INVALID_ARGUMENT"
	codePreconditionFailed = "PRECONDITION_FAILED"
	codeInsufficientStock  = "INSUFFICIENT_STOCK"
	codeInternal           = "INTERNAL"
)

// apiError adapta un error de dominio al contrato de errores GraphQL:
// mensaje legible + extensions.code. Implementa gqlerrors.ExtendedError.
type apiError struct {
	err  error
	code string
}

func (e *apiError) Error() string { return e.err.Error() }

func (e *apiError) Unwrap() error { return e.err }

// Extensions expone el código de error en la respuesta GraphQL.
func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// wrapError traduce los centinelas del dominio a códigos del boundary.
// No inventa semántica nueva: solo reexpone la taxonomía del motor.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &apiError{err: err, code: codeNotFound}
	case errors.Is(err, domain.ErrInvalidInput):
		return &apiError{err: err, code: codeInvalidArgument}
	case errors.Is(err, domain.ErrPreconditionFailed):
		return &apiError{err: err, code: codePreconditionFailed}
	case errors.Is(err, domain.ErrInsufficientStock):
		return &apiError{err: err, code: codeInsufficientStock}
	default:
		return &apiError{err: err, code: codeInternal}
	}
}
