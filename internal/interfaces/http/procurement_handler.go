package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/obras-api/internal/application/dto"
	"github.com/jhoicas/obras-api/internal/application/procurement"
)

// ProcurementHandler órdenes de compra, facturas y PDF de la orden.
type ProcurementHandler struct {
	uc    *procurement.UseCase
	pdfUC *procurement.PDFUseCase
	err   errorMapper
}

// NewProcurementHandler construye el handler de compras.
func NewProcurementHandler(uc *procurement.UseCase, pdfUC *procurement.PDFUseCase, em errorMapper) *ProcurementHandler {
	return &ProcurementHandler{uc: uc, pdfUC: pdfUC, err: em}
}

// Suppliers godoc
// @Summary      Mis proveedores
// @Tags         procurement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserSummary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/procurement/suppliers [get]
func (h *ProcurementHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListMySuppliers(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// CreatePurchaseOrder godoc
// @Summary      Crear orden de compra
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "supplier_id, details"
// @Success      201   {object}  dto.CreatePurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/procurement/purchase-orders [post]
func (h *ProcurementHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePurchaseOrder(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyOrders godoc
// @Summary      Órdenes recibidas
// @Tags         procurement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.PurchaseOrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/procurement/my-orders [get]
func (h *ProcurementHandler) MyOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListReceivedOrders(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// SubmitInvoice godoc
// @Summary      Enviar factura
// @Description  El contratista de la factura se toma de la orden.
// @Tags         procurement
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitInvoiceRequest  true  "po_id, amount, file_path"
// @Success      201   {object}  dto.SubmitInvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/procurement/invoices [post]
func (h *ProcurementHandler) SubmitInvoice(c *fiber.Ctx) error {
	var in dto.SubmitInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SubmitInvoice(c.UserContext(), GetActor(c), in)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Invoices godoc
// @Summary      Facturas recibidas
// @Tags         procurement
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/procurement/invoices [get]
func (h *ProcurementHandler) Invoices(c *fiber.Ctx) error {
	out, err := h.uc.ListInvoices(c.UserContext(), GetActor(c))
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// PurchaseOrderPDF godoc
// @Summary      PDF de la orden de compra
// @Tags         procurement
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path      string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurement/purchase-orders/{id}/pdf [get]
func (h *ProcurementHandler) PurchaseOrderPDF(c *fiber.Ctx) error {
	doc, filename, err := h.pdfUC.DownloadPurchaseOrderPDF(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return h.err.write(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc)
}
