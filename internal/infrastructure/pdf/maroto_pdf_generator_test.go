package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obras-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0,00",
		"500":       "500,00",
		"1500000.5": "1.500.000,50",
		"-25000":    "-25.000,00",
		"999.999":   "1.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGeneratePurchaseOrderPDF_ProduceDocumento(t *testing.T) {
	po := &entity.PurchaseOrder{
		ID:              "6f1c2d8e-0000-4000-8000-000000000001",
		ContractorID:    "c1",
		ContractorEmail: "c1@x.com",
		SupplierID:      "s1",
		SupplierEmail:   "s1@x.com",
		Details:         "20 bultos de cemento\n5 varillas 1/2\"",
		CreatedAt:       time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	invoices := []*entity.Invoice{{
		ID:            "inv-1",
		PurchaseOrder: po.ID,
		SupplierID:    "s1",
		ContractorID:  "c1",
		Amount:        decimal.NewFromInt(500),
		FilePath:      "facturas/inv-1.pdf",
		CreatedAt:     po.CreatedAt.Add(24 * time.Hour),
	}}

	doc, err := NewMarotoPDFGenerator().GeneratePurchaseOrderPDF(context.Background(), po, invoices)

	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}
