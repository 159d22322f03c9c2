package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// Cada categoría se traduce a un código HTTP en interfaces/http; el contexto se agrega con
// fmt.Errorf("%w: ...") y se clasifica con errors.Is.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Variantes de conflicto con mensaje propio para el usuario.
var (
	ErrEmailAlreadyExists  = fmt.Errorf("%w: el email ya está registrado", ErrConflict)
	ErrDuplicateAssignment = fmt.Errorf("%w: el contratista ya está asignado a este proyecto", ErrConflict)
	ErrRegistrationClosed  = fmt.Errorf("%w: la solicitud ya fue revisada", ErrConflict)
)

// Variantes de no encontrado usadas en varios casos de uso.
var (
	ErrUserNotFound    = fmt.Errorf("%w: usuario no encontrado", ErrNotFound)
	ErrCompanyNotFound = fmt.Errorf("%w: empresa asociada no encontrada", ErrNotFound)
	ErrProjectNotFound = fmt.Errorf("%w: proyecto no encontrado", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("%w: orden de compra no encontrada", ErrNotFound)
)

// Invalid construye un error de validación con el mensaje indicado.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// RequiredField es un campo de entrada obligatorio: nombre en el wire y valor recibido.
type RequiredField struct {
	Name  string
	Value string
}

// Field construye un RequiredField.
func Field(name, value string) RequiredField {
	return RequiredField{Name: name, Value: value}
}

// Required devuelve un error de validación que nombra los campos vacíos, en el orden
// recibido; nil si todos tienen valor.
func Required(fields ...RequiredField) error {
	var names []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return Invalid("faltan campos requeridos: %s", strings.Join(names, ", "))
}
