package auth

import (
	"strings"

	"github.com/jhoicas/Vinoteca-api/internal/domain"
)

// Registro fijo de scopes conocidos. Un scope fuera de esta lista se rechaza
// al emitir el token; nunca se emite un token con scopes desconocidos.
var knownScopes = map[string]struct{}{
	"read:products":   {},
	"write:products":  {},
	"read:stock":      {},
	"write:stock":     {},
	"read:movements":  {},
	"write:movements": {},
}

// KnownScope indica si el nombre pertenece al registro.
func KnownScope(name string) bool {
	_, ok := knownScopes[name]
	return ok
}

// ValidateScopes parsea la lista separada por espacios y la valida contra el
// registro. Devuelve domain.ErrInvalidScope ante cualquier nombre desconocido.
// Una cadena vacía es válida y produce una lista vacía (token solo con rol).
func ValidateScopes(requested string) ([]string, error) {
	fields := strings.Fields(requested)
	scopes := make([]string, 0, len(fields))
	for _, s := range fields {
		if !KnownScope(s) {
			return nil, domain.ErrInvalidScope
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}
