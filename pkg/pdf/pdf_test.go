package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counter/internal/domain"
	"counter/pkg/pdf"
)

func TestRenderWritesPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "invoice.pdf")

	extra := domain.ExtraLine{Desc: "On-call duty", Net: 500}
	inv := domain.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "3/2024",
		IssueDate:     "2024-03-31",
		SaleDate:      "2024-03-31",
		DueDate:       "2024-04-14",
		Hours:         160,
		Rate:          120,
		Net:           19200,
		TotalNet:      19700,
		VatPercent:    23,
		VatAmount:     4531,
		Gross:         24231,
		Currency:      "PLN",
		Place:         "Warszawa",
		Item:          domain.Item{Desc: "Software development services", Unit: "h"},
		Extra:         &extra,
		Seller:        domain.Party{Name: "Jan Kowalski", City: "Warszawa", TaxID: "123", Account: "PL00", Bank: "mBank"},
		Buyer:         domain.Party{Name: "ACME", City: "Gdańsk", TaxID: "777"},
	}

	require.NoError(t, pdf.New().Render(inv, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderMinimalInvoice(t *testing.T) {
	out := filepath.Join(t.TempDir(), "minimal.pdf")
	require.NoError(t, pdf.New().Render(domain.Invoice{ID: "x"}, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
