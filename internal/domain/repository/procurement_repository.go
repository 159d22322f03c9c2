package repository

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.PurchaseOrder, error)
}

// InvoiceRepository define el puerto de persistencia para facturas de proveedor.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	ListByContractor(ctx context.Context, contractorID string) ([]*entity.Invoice, error)
	ListByPurchaseOrder(ctx context.Context, poID string) ([]*entity.Invoice, error)
}
