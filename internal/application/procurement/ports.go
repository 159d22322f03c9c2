package procurement

import (
	"context"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// PurchaseOrderPDFGenerator genera el documento imprimible de una orden de compra
// junto con las facturas recibidas contra ella.
type PurchaseOrderPDFGenerator interface {
	GeneratePurchaseOrderPDF(ctx context.Context, po *entity.PurchaseOrder, invoices []*entity.Invoice) ([]byte, error)
}
