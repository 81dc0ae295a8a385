package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDependency         = errors.New("fallo al resolver o crear una entidad relacionada")
	ErrExport             = errors.New("fallo al generar el documento de exportación")
	// ErrViewMissing: la vista inventory_current aún no existe en la base (42P01).
	// Quien la consume degrada a saldo cero en lugar de fallar.
	ErrViewMissing = errors.New("la vista de saldos no existe")
)
