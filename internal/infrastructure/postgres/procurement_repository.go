package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/obras-api/internal/domain/entity"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

var (
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.InvoiceRepository       = (*InvoiceRepo)(nil)
)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderSelect = `
	SELECT po.id, po.contractor_id, COALESCE(c.email, ''), po.supplier_id, COALESCE(s.email, ''),
		po.details, po.created_at
	FROM purchase_orders po
	LEFT JOIN users c ON c.id = po.contractor_id
	LEFT JOIN users s ON s.id = po.supplier_id`

// Create persiste una orden de compra.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, contractor_id, supplier_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, po.ID, po.ContractorID, po.SupplierID, po.Details, po.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert purchase_order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID con los emails de las partes.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	po, err := scanPurchaseOrder(r.q.QueryRow(ctx, purchaseOrderSelect+` WHERE po.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase_order: %w", err)
	}
	return po, nil
}

// ListBySupplier órdenes dirigidas a un proveedor, más recientes primero.
func (r *PurchaseOrderRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, purchaseOrderSelect+` WHERE po.supplier_id = $1 ORDER BY po.created_at DESC`, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list purchase_orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase_order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

func scanPurchaseOrder(row pgxScanner) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	if err := row.Scan(&po.ID, &po.ContractorID, &po.ContractorEmail, &po.SupplierID, &po.SupplierEmail,
		&po.Details, &po.CreatedAt); err != nil {
		return nil, err
	}
	return &po, nil
}

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceSelect = `
	SELECT i.id, i.po_id, i.supplier_id, COALESCE(s.email, ''), i.contractor_id, i.amount,
		COALESCE(i.invoice_file_path, ''), i.created_at
	FROM invoices i
	LEFT JOIN users s ON s.id = i.supplier_id`

// Create persiste una factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, po_id, supplier_id, contractor_id, amount, invoice_file_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.PurchaseOrder, inv.SupplierID, inv.ContractorID, inv.Amount, nullIfEmpty(inv.FilePath), inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// ListByContractor facturas dirigidas a un contratista, más recientes primero.
func (r *InvoiceRepo) ListByContractor(ctx context.Context, contractorID string) ([]*entity.Invoice, error) {
	return r.list(ctx, invoiceSelect+` WHERE i.contractor_id = $1 ORDER BY i.created_at DESC`, contractorID)
}

// ListByPurchaseOrder facturas recibidas contra una orden.
func (r *InvoiceRepo) ListByPurchaseOrder(ctx context.Context, poID string) ([]*entity.Invoice, error) {
	return r.list(ctx, invoiceSelect+` WHERE i.po_id = $1 ORDER BY i.created_at DESC`, poID)
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.PurchaseOrder, &inv.SupplierID, &inv.SupplierEmail, &inv.ContractorID,
			&inv.Amount, &inv.FilePath, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
