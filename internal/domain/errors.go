package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrDocumentoExiste = errors.New("el número de documento ya está registrado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrIntegrity       = errors.New("relación requerida ausente")
)
