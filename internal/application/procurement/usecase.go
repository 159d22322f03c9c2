// Package procurement implementa la cadena orden de compra → factura entre un Contractor
// y los Suppliers que él mismo dio de alta.
package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

// UseCase operaciones de compras.
type UseCase struct {
	userRepo    repository.UserRepository
	poRepo      repository.PurchaseOrderRepository
	invoiceRepo repository.InvoiceRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	userRepo repository.UserRepository,
	poRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
) *UseCase {
	return &UseCase{userRepo: userRepo, poRepo: poRepo, invoiceRepo: invoiceRepo}
}

// ListMySuppliers proveedores creados por el Contractor.
func (uc *UseCase) ListMySuppliers(ctx context.Context, actor access.Actor) ([]dto.UserSummary, error) {
	if err := actor.Authorize(access.OpListSuppliers); err != nil {
		return nil, err
	}
	list, err := uc.userRepo.ListByCreatorAndRole(ctx, actor.UserID, entity.RoleSupplier)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserSummary, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UserSummary{ID: u.ID, Email: u.Email})
	}
	return out, nil
}

// CreatePurchaseOrder crea una orden dirigida a un proveedor del Contractor.
// Un proveedor ajeno se trata como inexistente.
func (uc *UseCase) CreatePurchaseOrder(ctx context.Context, actor access.Actor, in dto.CreatePurchaseOrderRequest) (*dto.CreatePurchaseOrderResponse, error) {
	if err := actor.Authorize(access.OpCreatePurchaseOrder); err != nil {
		return nil, err
	}
	if err := domain.Required(domain.Field("supplier_id", in.SupplierID), domain.Field("details", in.Details)); err != nil {
		return nil, err
	}
	supplier, err := uc.userRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.Role != entity.RoleSupplier || supplier.CreatedBy != actor.UserID {
		return nil, domain.ErrUserNotFound
	}

	po := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		ContractorID: actor.UserID,
		SupplierID:   supplier.ID,
		Details:      in.Details,
		CreatedAt:    time.Now(),
	}
	if err := uc.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}
	return &dto.CreatePurchaseOrderResponse{Message: "Orden de compra enviada al proveedor", POID: po.ID}, nil
}

// ListReceivedOrders órdenes dirigidas al Supplier, más recientes primero.
func (uc *UseCase) ListReceivedOrders(ctx context.Context, actor access.Actor) ([]dto.PurchaseOrderResponse, error) {
	if err := actor.Authorize(access.OpListReceivedOrders); err != nil {
		return nil, err
	}
	list, err := uc.poRepo.ListBySupplier(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		out = append(out, dto.PurchaseOrderResponse{
			ID:              po.ID,
			ContractorID:    po.ContractorID,
			ContractorEmail: po.ContractorEmail,
			SupplierID:      po.SupplierID,
			Details:         po.Details,
			CreatedAt:       po.CreatedAt,
		})
	}
	return out, nil
}

// SubmitInvoice registra la factura del Supplier contra una de sus órdenes.
// El contratista de la factura es siempre el de la orden.
//
// Retorna domain.ErrOrderNotFound si la orden no existe o no está dirigida al actor
// (en ambos casos sin escrituras).
func (uc *UseCase) SubmitInvoice(ctx context.Context, actor access.Actor, in dto.SubmitInvoiceRequest) (*dto.SubmitInvoiceResponse, error) {
	if err := actor.Authorize(access.OpSubmitInvoice); err != nil {
		return nil, err
	}
	if err := domain.Required(domain.Field("po_id", in.POID)); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount debe ser mayor que cero")
	}
	po, err := uc.poRepo.GetByID(ctx, in.POID)
	if err != nil {
		return nil, err
	}
	if po == nil || po.SupplierID != actor.UserID {
		return nil, domain.ErrOrderNotFound
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		PurchaseOrder: po.ID,
		SupplierID:    actor.UserID,
		ContractorID:  po.ContractorID,
		Amount:        in.Amount,
		FilePath:      in.FilePath,
		CreatedAt:     time.Now(),
	}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.SubmitInvoiceResponse{Message: "Factura enviada al contratista", InvoiceID: inv.ID}, nil
}

// ListInvoices facturas recibidas por el Contractor.
func (uc *UseCase) ListInvoices(ctx context.Context, actor access.Actor) ([]dto.InvoiceResponse, error) {
	if err := actor.Authorize(access.OpListInvoices); err != nil {
		return nil, err
	}
	list, err := uc.invoiceRepo.ListByContractor(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		POID:          inv.PurchaseOrder,
		SupplierID:    inv.SupplierID,
		SupplierEmail: inv.SupplierEmail,
		ContractorID:  inv.ContractorID,
		Amount:        inv.Amount,
		FilePath:      inv.FilePath,
		CreatedAt:     inv.CreatedAt,
	}
}
