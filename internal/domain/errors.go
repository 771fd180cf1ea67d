package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrTenantRequired     = errors.New("tenant no resuelto")
	ErrSlugTaken          = errors.New("el slug de tenant ya existe")
	ErrUsernameTaken      = errors.New("el username ya está registrado en este tenant")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado en este tenant")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrSheetNotEditable   = errors.New("el timesheet no admite cambios en su estado actual")
)
