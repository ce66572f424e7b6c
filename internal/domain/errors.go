package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInUse        = errors.New("el recurso está referenciado y no puede eliminarse")

	ErrBranchNotFound = errors.New("sucursal no encontrada")
)

// Errores del motor de traslados, en el orden en que se validan las precondiciones.
var (
	ErrInvalidQuantity           = errors.New("la cantidad debe ser mayor que cero")
	ErrSameBranch                = errors.New("la sucursal de origen y destino deben ser distintas")
	ErrUserNotFound              = errors.New("usuario no encontrado")
	ErrProductNotFound           = errors.New("producto no encontrado")
	ErrOriginBranchNotFound      = errors.New("sucursal de origen no encontrada")
	ErrDestinationBranchNotFound = errors.New("sucursal de destino no encontrada")
	ErrInsufficientStock         = errors.New("stock insuficiente en la sucursal de origen")
)

// Errores de autenticación: token inválido vs expirado se mantienen separados
// para que la capa HTTP responda 401 con el código correcto; ErrForbidden (403)
// nunca se mezcla con estos.
var (
	ErrInvalidToken       = errors.New("token inválido")
	ErrTokenExpired       = errors.New("token expirado")
	ErrInvalidScope       = errors.New("scope desconocido")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidGrant       = errors.New("grant_type no soportado")
)
