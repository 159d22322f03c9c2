package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder orden de compra de un Contractor a uno de sus Suppliers.
type PurchaseOrder struct {
	ID              string
	ContractorID    string
	ContractorEmail string // solo en lecturas
	SupplierID      string
	SupplierEmail   string // solo en lecturas
	Details         string
	CreatedAt       time.Time
}

// Invoice factura de un Supplier contra una PurchaseOrder. ContractorID se deriva
// siempre de la orden, nunca de la entrada del llamador.
type Invoice struct {
	ID            string
	PurchaseOrder string
	SupplierID    string
	SupplierEmail string // solo en lecturas
	ContractorID  string
	Amount        decimal.Decimal
	FilePath      string
	CreatedAt     time.Time
}
