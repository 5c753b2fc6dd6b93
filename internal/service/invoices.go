package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"counter/internal/domain"
	"counter/internal/invoice"
	"counter/internal/ledger"
	"counter/internal/store"
)

type Invoices interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id string) (domain.Invoice, error)
	Save(ctx context.Context, raw invoice.Raw, clientID string) (domain.Invoice, error)
	Delete(ctx context.Context, id string) error
	RenderPDF(ctx context.Context, id, outPath string) error
}

// Renderer turns a resolved invoice into a PDF artifact. The service
// never inspects the produced bytes; it only hands over the record
// and the output path.
type Renderer interface {
	Render(inv domain.Invoice, outPath string) error
}

type invoicesService struct {
	store    *store.Store
	renderer Renderer
	now      func() time.Time
}

func NewInvoices(st *store.Store, renderer Renderer) *invoicesService {
	return &invoicesService{store: st, renderer: renderer, now: time.Now}
}

func (s *invoicesService) List(ctx context.Context) ([]domain.Invoice, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Invoices, nil
}

func (s *invoicesService) Get(ctx context.Context, id string) (domain.Invoice, error) {
	doc, err := s.store.Load()
	if err != nil {
		return domain.Invoice{}, err
	}
	return findInvoice(doc, id)
}

// Save normalizes the raw input against the stored profile and
// persists the result. A raw id overwrites the prior record
// wholesale; without one a new invoice is minted.
//
// When a clientID is given the buyer snapshot is taken from that
// client; an empty clientID means the buyer comes verbatim from the
// raw input. Hours left blank fall back to the ledger's month sum for
// the sale date, which is how a monthly invoice picks up the tracked
// time without retyping it.
func (s *invoicesService) Save(ctx context.Context, raw invoice.Raw, clientID string) (domain.Invoice, error) {
	var saved domain.Invoice
	_, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		if clientID != "" {
			client, ok := clientByID(doc.Clients, clientID)
			if !ok {
				return domain.Document{}, fmt.Errorf("client %q: %w", clientID, ErrNotFound)
			}
			raw.Buyer = domain.Party{
				Name:    client.Name,
				Address: client.Address,
				City:    client.City,
				TaxID:   client.TaxID,
			}
		}

		if raw.Hours == "" {
			saleDate := raw.SaleDate
			if saleDate == "" {
				saleDate = raw.IssueDate
			}
			if sum, ok := ledger.SumForMonth(doc.Entries, saleDate); ok {
				raw.Hours = strconv.FormatFloat(sum, 'f', 2, 64)
			}
		}

		saved = invoice.Normalize(raw, doc.Profile, s.now())

		for i, existing := range doc.Invoices {
			if existing.ID == saved.ID {
				doc.Invoices[i] = saved
				return doc, nil
			}
		}
		doc.Invoices = append(doc.Invoices, saved)
		return doc, nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return saved, nil
}

func (s *invoicesService) Delete(ctx context.Context, id string) error {
	_, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		invoices := doc.Invoices[:0:0]
		for _, inv := range doc.Invoices {
			if inv.ID != id {
				invoices = append(invoices, inv)
			}
		}
		doc.Invoices = invoices
		return doc, nil
	})
	return err
}

func (s *invoicesService) RenderPDF(ctx context.Context, id, outPath string) error {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.renderer.Render(inv, outPath)
}

func findInvoice(doc domain.Document, id string) (domain.Invoice, error) {
	for _, inv := range doc.Invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return domain.Invoice{}, fmt.Errorf("invoice %q: %w", id, ErrNotFound)
}

func clientByID(clients []domain.Client, id string) (domain.Client, bool) {
	for _, c := range clients {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}
