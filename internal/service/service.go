// Package service wires the pure core functions to the document
// store. Every mutation runs as one atomic read-modify-write cycle
// through store.Update, so a validation failure leaves the stored
// document untouched.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"counter/internal/calendar"
	"counter/internal/domain"
	"counter/internal/hours"
	"counter/internal/ledger"
	"counter/internal/store"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrClientNameRequired = errors.New("client name is required")
)

type Ledger interface {
	Entries(ctx context.Context) (map[string]float64, error)
	UpsertEntry(ctx context.Context, date, rawHours string) (map[string]float64, error)
	RemoveEntry(ctx context.Context, date string) (map[string]float64, error)
	ClearMonth(ctx context.Context, yearMonth string) (map[string]float64, error)
	Summary(ctx context.Context, referenceDate string) (*Summary, error)
}

// Summary is the month view of the ledger: the hour sum plus the two
// progress metrics for the month containing the reference date.
type Summary struct {
	ReferenceDate string             `json:"referenceDate"`
	TotalHours    float64            `json:"totalHours"`
	Planned       ledger.Progress    `json:"planned"`
	Day           ledger.DayProgress `json:"day"`
}

type ledgerService struct {
	store *store.Store
	now   func() time.Time
}

func NewLedger(st *store.Store) *ledgerService {
	return &ledgerService{store: st, now: time.Now}
}

func (s *ledgerService) Entries(ctx context.Context) (map[string]float64, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

// UpsertEntry parses the raw hours strictly and rejects negative
// values before touching the store. The parser itself accepts
// negative decimals; the range check is this caller's job.
func (s *ledgerService) UpsertEntry(ctx context.Context, date, rawHours string) (map[string]float64, error) {
	hrs, err := hours.Parse(rawHours)
	if err != nil {
		return nil, err
	}
	if hrs < 0 {
		return nil, fmt.Errorf("%w: %v", ledger.ErrNegativeHours, hrs)
	}

	doc, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		entries, err := ledger.UpsertEntry(doc.Entries, date, hrs)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Entries = entries
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

func (s *ledgerService) RemoveEntry(ctx context.Context, date string) (map[string]float64, error) {
	doc, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		doc.Entries = ledger.RemoveEntry(doc.Entries, date)
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

func (s *ledgerService) ClearMonth(ctx context.Context, yearMonth string) (map[string]float64, error) {
	doc, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		entries, err := ledger.ClearMonth(doc.Entries, yearMonth)
		if err != nil {
			return domain.Document{}, err
		}
		doc.Entries = entries
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

func (s *ledgerService) Summary(ctx context.Context, referenceDate string) (*Summary, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	sum, ok := ledger.SumForMonth(doc.Entries, referenceDate)
	if !ok {
		return nil, fmt.Errorf("invalid reference date: %q", referenceDate)
	}

	ref, _ := calendar.ParseDate(referenceDate)
	return &Summary{
		ReferenceDate: referenceDate,
		TotalHours:    sum,
		Planned:       ledger.PlannedProgress(ref.Year, ref.Month, sum),
		Day:           ledger.DayProgressFor(ref.Year, ref.Month, s.now()),
	}, nil
}
