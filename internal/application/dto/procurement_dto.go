package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
	Details    string `json:"details" validate:"required"`
}

// CreatePurchaseOrderResponse confirmación con el ID de la orden.
type CreatePurchaseOrderResponse struct {
	Message string `json:"message"`
	POID    string `json:"poId"`
}

// PurchaseOrderResponse orden de compra en listados.
type PurchaseOrderResponse struct {
	ID              string    `json:"po_id"`
	ContractorID    string    `json:"contractor_id"`
	ContractorEmail string    `json:"contractor_email,omitempty"`
	SupplierID      string    `json:"supplier_id"`
	Details         string    `json:"details"`
	CreatedAt       time.Time `json:"created_at"`
}

// SubmitInvoiceRequest entrada para enviar una factura. No incluye contratista: se deriva de la orden.
type SubmitInvoiceRequest struct {
	POID     string          `json:"po_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	FilePath string          `json:"file_path"`
}

// SubmitInvoiceResponse confirmación con el ID de la factura.
type SubmitInvoiceResponse struct {
	Message   string `json:"message"`
	InvoiceID string `json:"invoiceId"`
}

// InvoiceResponse factura en listados.
type InvoiceResponse struct {
	ID            string          `json:"invoice_id"`
	POID          string          `json:"po_id"`
	SupplierID    string          `json:"supplier_id"`
	SupplierEmail string          `json:"supplier_email,omitempty"`
	ContractorID  string          `json:"contractor_id"`
	Amount        decimal.Decimal `json:"amount"`
	FilePath      string          `json:"invoice_file_path"`
	CreatedAt     time.Time       `json:"created_at"`
}
