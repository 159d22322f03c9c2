package procurement

import (
	"context"
	"fmt"

	"github.com/jhoicas/obras-api/internal/domain"
	"github.com/jhoicas/obras-api/internal/domain/access"
	"github.com/jhoicas/obras-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de una orden de compra para su contratista o su proveedor.
type PDFUseCase struct {
	poRepo      repository.PurchaseOrderRepository
	invoiceRepo repository.InvoiceRepository
	generator   PurchaseOrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	poRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	generator PurchaseOrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{poRepo: poRepo, invoiceRepo: invoiceRepo, generator: generator}
}

// DownloadPurchaseOrderPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
//
// Retorna domain.ErrOrderNotFound si la orden no existe o el actor no es parte de ella.
func (uc *PDFUseCase) DownloadPurchaseOrderPDF(ctx context.Context, actor access.Actor, poID string) ([]byte, string, error) {
	if poID == "" {
		return nil, "", domain.Invalid("id de orden requerido")
	}
	po, err := uc.poRepo.GetByID(ctx, poID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if po == nil || (po.ContractorID != actor.UserID && po.SupplierID != actor.UserID) {
		return nil, "", domain.ErrOrderNotFound
	}
	invoices, err := uc.invoiceRepo.ListByPurchaseOrder(ctx, po.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener facturas: %w", err)
	}
	doc, err := uc.generator.GeneratePurchaseOrderPDF(ctx, po, invoices)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return doc, fmt.Sprintf("orden_compra_%s.pdf", shortID(po.ID)), nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
