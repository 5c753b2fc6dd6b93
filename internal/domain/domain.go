// Package domain holds the persisted shapes of the application:
// the day-indexed hours ledger, the client address book, the seller
// profile and the computed invoices. Everything here is plain data;
// the computation lives in the ledger and invoice packages.
package domain

import "time"

// Document is the full persisted state. The store reads and writes it
// as a single JSON value; every mutation is a read-modify-write over
// one Document.
type Document struct {
	Entries  map[string]float64 `json:"entries"`
	Clients  []Client           `json:"clients"`
	Profile  Profile            `json:"profile"`
	Invoices []Invoice          `json:"invoices"`
}

// Client is one buyer in the address book. Identity is ID; saving a
// client with an existing ID replaces it.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	TaxID   string `json:"taxId"`
}

// Party identifies one side of an invoice. Buyer records leave
// Account and Bank empty.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	TaxID   string `json:"taxId"`
	Account string `json:"account,omitempty"`
	Bank    string `json:"bank,omitempty"`
}

// Profile is the singleton seller identity plus invoice-wide defaults.
// It always exists; updates merge field-by-field and never delete it.
type Profile struct {
	Seller   Party    `json:"seller"`
	Defaults Defaults `json:"defaults"`
}

// Defaults are applied by the invoice normalizer wherever the raw
// input leaves a field blank.
type Defaults struct {
	HourlyRate      float64 `json:"hourlyRate"`
	VatPercent      float64 `json:"vatPercent"`
	Currency        string  `json:"currency"`
	InvoicePlace    string  `json:"invoicePlace"`
	ItemDescription string  `json:"itemDescription"`
	ItemUnit        string  `json:"itemUnit"`
	DueDays         int     `json:"dueDays"`
}

// Item is the main invoice line description.
type Item struct {
	Desc string `json:"desc"`
	Unit string `json:"unit"`
}

// ExtraLine is an optional second invoice line with its own net amount.
type ExtraLine struct {
	Desc string  `json:"desc"`
	Net  float64 `json:"net"`
}

// Invoice is a fully resolved invoice record. Seller and Buyer are
// snapshots taken at creation time, not references, so the record
// stays historically accurate when the profile or client changes.
// Money fields are re-derivable from the stored inputs:
// totalNet = (manualNet ?? hours*rate) + extra.net, vatAmount =
// totalNet*vatPercent/100, gross = totalNet + vatAmount, each rounded
// to two decimals.
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoiceNumber"`
	IssueDate     string     `json:"issueDate"`
	SaleDate      string     `json:"saleDate"`
	DueDate       string     `json:"dueDate"`
	DueDays       int        `json:"dueDays"`
	Month         int        `json:"month"`
	Year          int        `json:"year"`
	Hours         float64    `json:"hours"`
	Rate          float64    `json:"rate"`
	Net           float64    `json:"net"`
	TotalNet      float64    `json:"totalNet"`
	VatPercent    float64    `json:"vatPercent"`
	VatAmount     float64    `json:"vatAmount"`
	Gross         float64    `json:"gross"`
	Currency      string     `json:"currency"`
	Place         string     `json:"place,omitempty"`
	Item          Item       `json:"item"`
	Extra         *ExtraLine `json:"extra,omitempty"`
	ManualNet     *float64   `json:"manualNet,omitempty"`
	Seller        Party      `json:"seller"`
	Buyer         Party      `json:"buyer"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// DefaultProfile returns the profile used before the user has saved
// one, and the fallback values for partially populated documents.
func DefaultProfile() Profile {
	return Profile{
		Defaults: Defaults{
			VatPercent:      23,
			Currency:        "PLN",
			ItemDescription: "Software development services",
			ItemUnit:        "h",
			DueDays:         14,
		},
	}
}

// Normalized fills in the zero-value gaps a partially populated
// document may have, e.g. when loaded from an older or hand-edited
// file. The store applies it on every load.
func (d Document) Normalized() Document {
	if d.Entries == nil {
		d.Entries = map[string]float64{}
	}
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
	}
	def := DefaultProfile().Defaults
	if d.Profile.Defaults.VatPercent == 0 {
		d.Profile.Defaults.VatPercent = def.VatPercent
	}
	if d.Profile.Defaults.Currency == "" {
		d.Profile.Defaults.Currency = def.Currency
	}
	if d.Profile.Defaults.ItemDescription == "" {
		d.Profile.Defaults.ItemDescription = def.ItemDescription
	}
	if d.Profile.Defaults.ItemUnit == "" {
		d.Profile.Defaults.ItemUnit = def.ItemUnit
	}
	if d.Profile.Defaults.DueDays == 0 {
		d.Profile.Defaults.DueDays = def.DueDays
	}
	return d
}
