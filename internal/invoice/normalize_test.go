package invoice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counter/internal/domain"
	"counter/internal/invoice"
)

var now = time.Date(2024, time.March, 12, 10, 30, 0, 0, time.UTC)

func profile() domain.Profile {
	return domain.Profile{
		Seller: domain.Party{
			Name:    "Jan Kowalski",
			Address: "ul. Prosta 1",
			City:    "00-001 Warszawa",
			TaxID:   "1234567890",
			Account: "PL00 1234",
			Bank:    "mBank",
		},
		Defaults: domain.Defaults{
			HourlyRate:      120,
			VatPercent:      23,
			Currency:        "PLN",
			InvoicePlace:    "Warszawa",
			ItemDescription: "Software development services",
			ItemUnit:        "h",
			DueDays:         14,
		},
	}
}

func TestNormalizeMoneyFields(t *testing.T) {
	rate := 50.0
	vat := 23.0
	inv := invoice.Normalize(invoice.Raw{
		Hours:      "8:00",
		Rate:       &rate,
		VatPercent: &vat,
		Buyer:      domain.Party{Name: "ACME"},
	}, profile(), now)

	assert.Equal(t, 8.0, inv.Hours)
	assert.Equal(t, 400.0, inv.Net)
	assert.Equal(t, 400.0, inv.TotalNet)
	assert.Equal(t, 92.0, inv.VatAmount)
	assert.Equal(t, 492.0, inv.Gross)
}

func TestNormalizeDefaults(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{Hours: "160"}, profile(), now)

	assert.Equal(t, "2024-03-12", inv.IssueDate)
	assert.Equal(t, "2024-03-12", inv.SaleDate)
	assert.Equal(t, "2024-03-26", inv.DueDate)
	assert.Equal(t, 14, inv.DueDays)
	assert.Equal(t, 120.0, inv.Rate)
	assert.Equal(t, 23.0, inv.VatPercent)
	assert.Equal(t, "PLN", inv.Currency)
	assert.Equal(t, "Warszawa", inv.Place)
	assert.Equal(t, "Software development services", inv.Item.Desc)
	assert.Equal(t, "h", inv.Item.Unit)
	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, now, inv.CreatedAt)
}

func TestNormalizePeriodFromSaleDate(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{
		IssueDate: "2024-04-02",
		SaleDate:  "2024-03-31",
		Hours:     "10",
	}, profile(), now)

	// The tax period follows the sale date, not the issue date.
	assert.Equal(t, 3, inv.Month)
	assert.Equal(t, 2024, inv.Year)
}

func TestNormalizeSaleDateDefaultsToIssueDate(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{IssueDate: "2024-02-29", Hours: "1"}, profile(), now)
	assert.Equal(t, "2024-02-29", inv.SaleDate)
	assert.Equal(t, 2, inv.Month)
}

func TestNormalizeInvalidIssueDateFallsBackToNow(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{IssueDate: "soon", Hours: "1"}, profile(), now)
	assert.Equal(t, "2024-03-12", inv.IssueDate)
	assert.Equal(t, "2024-03-26", inv.DueDate)
}

func TestNormalizeInvalidHoursCoercedToZero(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{Hours: "nope"}, profile(), now)
	assert.Equal(t, 0.0, inv.Hours)
	assert.Equal(t, 0.0, inv.TotalNet)
	assert.Equal(t, 0.0, inv.Gross)
}

func TestNormalizeManualNetOverride(t *testing.T) {
	manual := 1000.0
	inv := invoice.Normalize(invoice.Raw{
		Hours:     "8",
		ManualNet: &manual,
	}, profile(), now)

	assert.Equal(t, 1000.0, inv.Net)
	assert.Equal(t, 1000.0, inv.TotalNet)
	assert.Equal(t, 230.0, inv.VatAmount)
	assert.Equal(t, 1230.0, inv.Gross)
	require.NotNil(t, inv.ManualNet)
}

// An override of zero is an override, not a missing value.
func TestNormalizeManualNetZero(t *testing.T) {
	zero := 0.0
	inv := invoice.Normalize(invoice.Raw{
		Hours:     "8",
		ManualNet: &zero,
	}, profile(), now)

	assert.Equal(t, 0.0, inv.TotalNet)
	assert.Equal(t, 0.0, inv.Gross)
}

func TestNormalizeExtraLine(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{
		Hours: "10",
		Extra: &domain.ExtraLine{Desc: "On-call duty", Net: 500.004},
	}, profile(), now)

	require.NotNil(t, inv.Extra)
	assert.Equal(t, 500.0, inv.Extra.Net)
	assert.Equal(t, 1700.0, inv.TotalNet) // 10*120 + 500
	assert.Equal(t, 391.0, inv.VatAmount)
	assert.Equal(t, 2091.0, inv.Gross)
}

// An extra net without a description is ignored.
func TestNormalizeExtraWithoutDescIgnored(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{
		Hours: "10",
		Extra: &domain.ExtraLine{Net: 500},
	}, profile(), now)

	assert.Nil(t, inv.Extra)
	assert.Equal(t, 1200.0, inv.TotalNet)
}

func TestNormalizeSellerMergeAndBuyerVerbatim(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{
		Hours:  "1",
		Seller: domain.Party{Account: "PL99 9999"},
		Buyer:  domain.Party{Name: "ACME", TaxID: "9999999999"},
	}, profile(), now)

	// Raw seller fields win field-by-field over the profile seller.
	assert.Equal(t, "Jan Kowalski", inv.Seller.Name)
	assert.Equal(t, "PL99 9999", inv.Seller.Account)
	assert.Equal(t, "mBank", inv.Seller.Bank)

	assert.Equal(t, domain.Party{Name: "ACME", TaxID: "9999999999"}, inv.Buyer)
}

func TestNormalizeKeepsSuppliedID(t *testing.T) {
	inv := invoice.Normalize(invoice.Raw{ID: "inv-7", Hours: "1"}, profile(), now)
	assert.Equal(t, "inv-7", inv.ID)
}

func TestNormalizeIdempotent(t *testing.T) {
	rate := 95.5
	raw := invoice.Raw{
		ID:        "inv-1",
		Hours:     "7:20",
		Rate:      &rate,
		Extra:     &domain.ExtraLine{Desc: "Support", Net: 123.45},
		SaleDate:  "2024-02-29",
		IssueDate: "2024-03-01",
		Buyer:     domain.Party{Name: "ACME"},
	}

	first := invoice.Normalize(raw, profile(), now)
	second := invoice.Normalize(raw, profile(), now)
	assert.Equal(t, first, second)
}
