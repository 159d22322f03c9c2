// Package access concentra la matriz de autorización: qué rol puede crear a qué rol y qué
// rol puede invocar cada operación. Es la única fuente de verdad; middleware HTTP y casos
// de uso consultan estas tablas.
package access

import (
	"fmt"
	"strings"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// creatable es la matriz creador → roles que puede crear. Cualquier par ausente es false.
var creatable = map[entity.Role][]entity.Role{
	entity.RoleOwner:      {entity.RoleProjectManager, entity.RoleContractor},
	entity.RoleContractor: {entity.RoleSiteEngineer, entity.RoleSupplier},
}

// CanCreate informa si actingRole puede aprovisionar un usuario con targetRole.
func CanCreate(actingRole, targetRole entity.Role) bool {
	for _, r := range creatable[actingRole] {
		if r == targetRole {
			return true
		}
	}
	return false
}

// CreatableBy devuelve los roles que actingRole puede crear (vacío si ninguno).
func CreatableBy(actingRole entity.Role) []entity.Role {
	out := make([]entity.Role, len(creatable[actingRole]))
	copy(out, creatable[actingRole])
	return out
}

// Operation identifica una acción protegida por rol.
type Operation string

const (
	OpListRegistrations   Operation = "listar solicitudes de registro"
	OpApproveRegistration Operation = "aprobar empresas"
	OpRejectRegistration  Operation = "rechazar empresas"
	OpCreateUser          Operation = "crear usuarios"
	OpCreateProject       Operation = "crear proyectos"
	OpAssignContractor    Operation = "asignar contratistas"
	OpCreateReport        Operation = "registrar reportes diarios"
	OpRequestMaterial     Operation = "solicitar materiales"
	OpListSuppliers       Operation = "listar proveedores"
	OpCreatePurchaseOrder Operation = "crear órdenes de compra"
	OpListReceivedOrders  Operation = "ver órdenes recibidas"
	OpSubmitInvoice       Operation = "enviar facturas"
	OpListInvoices        Operation = "ver facturas recibidas"
)

// gates asigna a cada operación los roles que pueden invocarla.
var gates = map[Operation][]entity.Role{
	OpListRegistrations:   {entity.RoleAdmin},
	OpApproveRegistration: {entity.RoleAdmin},
	OpRejectRegistration:  {entity.RoleAdmin},
	OpCreateUser:          {entity.RoleOwner, entity.RoleContractor},
	OpCreateProject:       {entity.RoleProjectManager},
	OpAssignContractor:    {entity.RoleProjectManager},
	OpCreateReport:        {entity.RoleSiteEngineer},
	OpRequestMaterial:     {entity.RoleSiteEngineer},
	OpListSuppliers:       {entity.RoleContractor},
	OpCreatePurchaseOrder: {entity.RoleContractor},
	OpListReceivedOrders:  {entity.RoleSupplier},
	OpSubmitInvoice:       {entity.RoleSupplier},
	OpListInvoices:        {entity.RoleContractor},
}

// Allowed informa si role puede invocar op. Una operación sin entrada no la permite nadie.
func Allowed(role entity.Role, op Operation) bool {
	for _, r := range gates[op] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize devuelve domain.ErrForbidden (con rol y acción en el mensaje) si role no puede op.
func Authorize(role entity.Role, op Operation) error {
	if Allowed(role, op) {
		return nil
	}
	return Denied(role, string(op))
}

// AuthorizeCreate valida la arista creador → rol destino de la matriz.
func AuthorizeCreate(actingRole, targetRole entity.Role) error {
	if CanCreate(actingRole, targetRole) {
		return nil
	}
	action := "crear usuarios con rol " + string(targetRole)
	if allowed := CreatableBy(actingRole); len(allowed) > 0 {
		names := make([]string, len(allowed))
		for i, r := range allowed {
			names[i] = string(r)
		}
		action += " (permitidos: " + strings.Join(names, ", ") + ")"
	}
	return Denied(actingRole, action)
}

// Denied construye el error de autorización estándar.
func Denied(role entity.Role, action string) error {
	r := string(role)
	if r == "" {
		r = "sin rol"
	}
	return fmt.Errorf("%w: el rol %s no puede %s", domain.ErrForbidden, r, action)
}
