// Package pdf renders a resolved invoice record to an A4 PDF file:
// title, date line, seller/buyer block, items table and the totals
// box with the amount due.
package pdf

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"counter/internal/domain"
)

type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

const margin = 18.0

func (r *Renderer) Render(inv domain.Invoice, outPath string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.AddPage()

	title := "INVOICE"
	if inv.InvoiceNumber != "" {
		title += " " + inv.InvoiceNumber
	}
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	meta := fmt.Sprintf("Issued: %s    Sale date: %s    Due: %s", inv.IssueDate, inv.SaleDate, inv.DueDate)
	if inv.Place != "" {
		meta += "    Place: " + inv.Place
	}
	doc.CellFormat(0, 7, meta, "", 1, "L", false, 0, "")
	doc.Ln(4)

	r.parties(doc, inv)
	doc.Ln(4)
	r.items(doc, inv)
	doc.Ln(4)
	r.totals(doc, inv)

	return doc.OutputFileAndClose(outPath)
}

func (r *Renderer) parties(doc *gofpdf.Fpdf, inv domain.Invoice) {
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(90, 7, "Seller", "", 0, "L", false, 0, "")
	doc.CellFormat(90, 7, "Buyer", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	seller := partyLines(inv.Seller)
	buyer := partyLines(inv.Buyer)
	for i := 0; i < len(seller) || i < len(buyer); i++ {
		var left, right string
		if i < len(seller) {
			left = seller[i]
		}
		if i < len(buyer) {
			right = buyer[i]
		}
		doc.CellFormat(90, 5, left, "", 0, "L", false, 0, "")
		doc.CellFormat(90, 5, right, "", 1, "L", false, 0, "")
	}
}

func partyLines(p domain.Party) []string {
	lines := []string{}
	for _, s := range []string{p.Name, p.Address, p.City} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	if p.TaxID != "" {
		lines = append(lines, "Tax ID: "+p.TaxID)
	}
	if p.Account != "" {
		lines = append(lines, "Account: "+p.Account)
	}
	if p.Bank != "" {
		lines = append(lines, "Bank: "+p.Bank)
	}
	return lines
}

type itemRow struct {
	no       string
	desc     string
	quantity string
	unit     string
	net      float64
}

func (r *Renderer) items(doc *gofpdf.Fpdf, inv domain.Invoice) {
	rows := []itemRow{{
		no:       "1",
		desc:     inv.Item.Desc,
		quantity: fmt.Sprintf("%.2f %s", inv.Hours, inv.Item.Unit),
		unit:     money(inv.Rate, inv.Currency),
		net:      inv.Net,
	}}
	if inv.Extra != nil && inv.Extra.Desc != "" {
		rows = append(rows, itemRow{
			no:       "2",
			desc:     inv.Extra.Desc,
			quantity: "1 item",
			unit:     money(inv.Extra.Net, inv.Currency),
			net:      inv.Extra.Net,
		})
	}

	widths := []float64{10, 48, 24, 24, 22, 14, 22, 24}
	headers := []string{"#", "Item", "Quantity", "Unit price", "Net", "VAT %", "VAT", "Gross"}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for i, h := range headers {
		doc.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	vatLabel := fmt.Sprintf("%.0f%%", inv.VatPercent)
	doc.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		vat := row.net * inv.VatPercent / 100
		cells := []string{
			row.no,
			row.desc,
			row.quantity,
			row.unit,
			money(row.net, inv.Currency),
			vatLabel,
			money(vat, inv.Currency),
			money(row.net+vat, inv.Currency),
		}
		for i, cell := range cells {
			align := "R"
			switch i {
			case 0:
				align = "C"
			case 1:
				align = "L"
			}
			doc.CellFormat(widths[i], 8, cell, "1", 0, align, false, 0, "")
		}
		doc.Ln(-1)
	}
}

func (r *Renderer) totals(doc *gofpdf.Fpdf, inv domain.Invoice) {
	vatLabel := fmt.Sprintf("VAT %.0f%%:", inv.VatPercent)
	rows := [][2]string{
		{"Net total:", money(inv.TotalNet, inv.Currency)},
		{vatLabel, money(inv.VatAmount, inv.Currency)},
		{"Amount due:", money(inv.Gross, inv.Currency)},
	}

	pageWidth, _ := doc.GetPageSize()
	left := pageWidth - margin - 100

	doc.SetFont("Helvetica", "", 11)
	for i, row := range rows {
		if i == len(rows)-1 {
			doc.SetFont("Helvetica", "B", 11)
		}
		doc.SetX(left)
		doc.CellFormat(60, 7, row[0], "", 0, "L", false, 0, "")
		doc.CellFormat(40, 7, row[1], "", 1, "R", false, 0, "")
	}
}

func money(v float64, currency string) string {
	return strings.TrimSpace(fmt.Sprintf("%.2f %s", v, currency))
}
