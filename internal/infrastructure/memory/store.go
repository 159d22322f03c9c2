// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con DB_DRIVER=memory y en los tests de casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/obras-api/internal/application/usecase"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

type data struct {
	users       map[string]entity.User
	regs        map[string]entity.CompanyRegistration
	projects    map[string]entity.Project
	assignments []entity.ProjectAssignment
	reports     []entity.DailyProgressReport
	materials   []entity.MaterialRequest
	orders      map[string]entity.PurchaseOrder
	invoices    []entity.Invoice
}

// cloneAccounts copia las tablas que toca una transacción de registro.
func (d *data) cloneAccounts() *data {
	out := *d
	out.users = make(map[string]entity.User, len(d.users))
	for k, v := range d.users {
		out.users[k] = v
	}
	out.regs = make(map[string]entity.CompanyRegistration, len(d.regs))
	for k, v := range d.regs {
		out.regs[k] = v
	}
	return &out
}

// Store guarda todas las tablas detrás de un único RWMutex.
type Store struct {
	mu sync.RWMutex
	d  *data
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{d: &data{
		users:    make(map[string]entity.User),
		regs:     make(map[string]entity.CompanyRegistration),
		projects: make(map[string]entity.Project),
		orders:   make(map[string]entity.PurchaseOrder),
	}}
}

// view da acceso a las tablas: con bloqueo sobre el Store, o sin él dentro de una
// transacción (que ya tiene el lock exclusivo).
type view struct {
	s  *Store
	tx *data
}

func (v view) read(fn func(d *data)) {
	if v.tx != nil {
		fn(v.tx)
		return
	}
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	fn(v.s.d)
}

func (v view) write(fn func(d *data) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn(v.s.d)
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{view{s: s}} }

// Registrations devuelve el repositorio de solicitudes de registro.
func (s *Store) Registrations() *RegistrationRepo { return &RegistrationRepo{view{s: s}} }

// Projects devuelve el repositorio de proyectos.
func (s *Store) Projects() *ProjectRepo { return &ProjectRepo{view{s: s}} }

// Reports devuelve el repositorio de reportes diarios.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{view{s: s}} }

// Materials devuelve el repositorio de requisiciones.
func (s *Store) Materials() *MaterialRepo { return &MaterialRepo{view{s: s}} }

// PurchaseOrders devuelve el repositorio de órdenes de compra.
func (s *Store) PurchaseOrders() *PurchaseOrderRepo { return &PurchaseOrderRepo{view{s: s}} }

// Invoices devuelve el repositorio de facturas.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{view{s: s}} }

var _ usecase.RegistrationTxRunner = (*Store)(nil)

// RunRegistration ejecuta fn con el Store bloqueado en exclusiva sobre una copia de
// usuarios y solicitudes. Si fn devuelve error la copia se descarta; si no, reemplaza
// a las tablas originales.
func (s *Store) RunRegistration(ctx context.Context, fn func(
	regRepo repository.RegistrationRepository,
	userRepo repository.UserRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.d.cloneAccounts()
	tx := view{tx: work}
	if err := fn(&RegistrationRepo{tx}, &UserRepo{tx}); err != nil {
		return err
	}
	s.d.users = work.users
	s.d.regs = work.regs
	return nil
}
