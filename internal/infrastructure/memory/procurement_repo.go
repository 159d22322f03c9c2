package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var (
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.InvoiceRepository       = (*InvoiceRepo)(nil)
)

// PurchaseOrderRepo implementa repository.PurchaseOrderRepository.
type PurchaseOrderRepo struct{ v view }

func (r *PurchaseOrderRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	return r.v.write(func(d *data) error {
		d.orders[po.ID] = *po
		return nil
	})
}

func (r *PurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	var out *entity.PurchaseOrder
	r.v.read(func(d *data) {
		if po, ok := d.orders[id]; ok {
			withEmails(d, &po)
			out = &po
		}
	})
	return out, nil
}

func (r *PurchaseOrderRepo) ListBySupplier(_ context.Context, supplierID string) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	r.v.read(func(d *data) {
		for _, po := range d.orders {
			if po.SupplierID == supplierID {
				po := po
				withEmails(d, &po)
				out = append(out, &po)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func withEmails(d *data, po *entity.PurchaseOrder) {
	po.ContractorEmail = d.users[po.ContractorID].Email
	po.SupplierEmail = d.users[po.SupplierID].Email
}

// InvoiceRepo implementa repository.InvoiceRepository.
type InvoiceRepo struct{ v view }

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	return r.v.write(func(d *data) error {
		d.invoices = append(d.invoices, *inv)
		return nil
	})
}

func (r *InvoiceRepo) ListByContractor(_ context.Context, contractorID string) ([]*entity.Invoice, error) {
	return r.filter(func(inv entity.Invoice) bool { return inv.ContractorID == contractorID }), nil
}

func (r *InvoiceRepo) ListByPurchaseOrder(_ context.Context, poID string) ([]*entity.Invoice, error) {
	return r.filter(func(inv entity.Invoice) bool { return inv.PurchaseOrder == poID }), nil
}

func (r *InvoiceRepo) filter(keep func(entity.Invoice) bool) []*entity.Invoice {
	var out []*entity.Invoice
	r.v.read(func(d *data) {
		for _, inv := range d.invoices {
			if keep(inv) {
				inv := inv
				inv.SupplierEmail = d.users[inv.SupplierID].Email
				out = append(out, &inv)
			}
		}
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
