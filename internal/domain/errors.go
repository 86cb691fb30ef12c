package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInUse              = errors.New("recurso en uso, no se puede eliminar")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrMissingScope       = errors.New("sin empresa asignada")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrCarUnavailable     = errors.New("el auto no está disponible")
)
