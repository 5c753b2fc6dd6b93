// Package invoice resolves raw, partially-specified invoice input
// into a fully computed, internally consistent invoice record.
package invoice

import (
	"time"

	"github.com/google/uuid"

	"counter/internal/calendar"
	"counter/internal/domain"
	"counter/internal/hours"
)

// Raw is invoice input as it arrives from the outside: every field
// optional, dates and hours as strings. Normalize fills the gaps from
// the profile defaults.
type Raw struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	IssueDate     string            `json:"issueDate"`
	SaleDate      string            `json:"saleDate"`
	DueDate       string            `json:"dueDate"`
	DueDays       *int              `json:"dueDays"`
	Hours         string            `json:"hours"`
	Rate          *float64          `json:"rate"`
	VatPercent    *float64          `json:"vatPercent"`
	Currency      string            `json:"currency"`
	Place         string            `json:"place"`
	Item          domain.Item       `json:"item"`
	Extra         *domain.ExtraLine `json:"extra"`

	// ManualNet, when present, replaces hours*rate as the base net.
	// A pointer keeps "no override" distinguishable from an explicit
	// override of zero.
	ManualNet *float64 `json:"manualNet"`

	// Seller fields override the profile seller field-by-field.
	// Buyer is taken verbatim; an invoice never attributes a buyer
	// the caller did not name.
	Seller domain.Party `json:"seller"`
	Buyer  domain.Party `json:"buyer"`
}

// Normalize computes a complete invoice record from raw input and the
// profile defaults. It is a pure function: now supplies both the
// createdAt timestamp and the fallback for missing dates, so fixed
// inputs always produce identical money fields.
//
// Unparseable hours are coerced to zero rather than rejected, so a
// half-filled form still yields a saveable invoice. Callers that need
// strict validation must run the hours parser themselves first.
func Normalize(raw Raw, profile domain.Profile, now time.Time) domain.Invoice {
	def := profile.Defaults

	issueDate := parseOrToday(raw.IssueDate, now)
	saleDate := issueDate
	if d, err := calendar.ParseDate(raw.SaleDate); err == nil {
		saleDate = d
	}

	dueDays := def.DueDays
	if raw.DueDays != nil {
		dueDays = *raw.DueDays
	}
	dueDate := raw.DueDate
	if dueDate == "" {
		dueDate = issueDate.AddDays(dueDays).String()
	}

	rate := def.HourlyRate
	if raw.Rate != nil {
		rate = *raw.Rate
	}
	vatPercent := def.VatPercent
	if raw.VatPercent != nil {
		vatPercent = *raw.VatPercent
	}
	currency := raw.Currency
	if currency == "" {
		currency = def.Currency
	}
	place := raw.Place
	if place == "" {
		place = def.InvoicePlace
	}

	hrs, err := hours.Parse(raw.Hours)
	if err != nil {
		hrs = 0
	}

	// The main line's net is hours*rate unless an explicit manual
	// override is present; an override of zero counts as an override.
	net := hours.Round2(hrs * rate)
	if raw.ManualNet != nil {
		net = hours.Round2(*raw.ManualNet)
	}

	var extra *domain.ExtraLine
	var extraNet float64
	if raw.Extra != nil && raw.Extra.Desc != "" {
		extraNet = hours.Round2(raw.Extra.Net)
		extra = &domain.ExtraLine{Desc: raw.Extra.Desc, Net: extraNet}
	}

	totalNet := hours.Round2(net + extraNet)
	vatAmount := hours.Round2(totalNet * vatPercent / 100)
	gross := hours.Round2(totalNet + vatAmount)

	item := raw.Item
	if item.Desc == "" {
		item.Desc = def.ItemDescription
	}
	if item.Unit == "" {
		item.Unit = def.ItemUnit
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	return domain.Invoice{
		ID:            id,
		InvoiceNumber: raw.InvoiceNumber,
		IssueDate:     issueDate.String(),
		SaleDate:      saleDate.String(),
		DueDate:       dueDate,
		DueDays:       dueDays,
		Month:         int(saleDate.Month),
		Year:          saleDate.Year,
		Hours:         hrs,
		Rate:          rate,
		Net:           net,
		TotalNet:      totalNet,
		VatPercent:    vatPercent,
		VatAmount:     vatAmount,
		Gross:         gross,
		Currency:      currency,
		Place:         place,
		Item:          item,
		Extra:         extra,
		ManualNet:     raw.ManualNet,
		Seller:        mergeParty(profile.Seller, raw.Seller),
		Buyer:         raw.Buyer,
		CreatedAt:     now,
	}
}

// parseOrToday falls back to today's date instead of failing: a
// single bad date field must not make an invoice un-creatable.
func parseOrToday(s string, now time.Time) calendar.Date {
	if d, err := calendar.ParseDate(s); err == nil {
		return d
	}
	return calendar.DateOf(now)
}

func mergeParty(base, override domain.Party) domain.Party {
	if override.Name != "" {
		base.Name = override.Name
	}
	if override.Address != "" {
		base.Address = override.Address
	}
	if override.City != "" {
		base.City = override.City
	}
	if override.TaxID != "" {
		base.TaxID = override.TaxID
	}
	if override.Account != "" {
		base.Account = override.Account
	}
	if override.Bank != "" {
		base.Bank = override.Bank
	}
	return base
}
