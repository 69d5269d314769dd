package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrNegativeStock    = errors.New("el stock no puede ser negativo")
	ErrUnparseableReply = errors.New("respuesta del modelo sin JSON interpretable")
	ErrUpstream         = errors.New("servicio externo no disponible")
)
