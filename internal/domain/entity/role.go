package entity

import "fmt"

// Role es el rol de un usuario. Conjunto cerrado: solo las constantes de abajo son válidas.
// Los valores son los que viajan en el JWT y en la API.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleOwner          Role = "Owner"
	RoleProjectManager Role = "Project Manager"
	RoleContractor     Role = "Contractor"
	RoleSiteEngineer   Role = "Site Engineer"
	RoleSupplier       Role = "Supplier"
)

// Roles devuelve todos los roles conocidos en orden jerárquico.
func Roles() []Role {
	return []Role{RoleAdmin, RoleOwner, RoleProjectManager, RoleContractor, RoleSiteEngineer, RoleSupplier}
}

// Valid informa si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleProjectManager, RoleContractor, RoleSiteEngineer, RoleSupplier:
		return true
	}
	return false
}

// ParseRole convierte el texto recibido por la API en un Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("rol desconocido %q", s)
	}
	return r, nil
}

func (r Role) String() string { return string(r) }
