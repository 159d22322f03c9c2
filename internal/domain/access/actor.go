package access

import "github.com/jhoicas/obras-api/internal/domain/entity"

// Actor es la identidad autenticada que ejecuta una operación. Se pasa explícitamente a
// cada caso de uso; sale de los claims del token.
type Actor struct {
	UserID string
	Role   entity.Role
}

// Authorize aplica el gate de la operación al rol del actor.
func (a Actor) Authorize(op Operation) error {
	return Authorize(a.Role, op)
}
