package service

import (
	"context"

	"counter/internal/domain"
	"counter/internal/store"
)

type Profile interface {
	Get(ctx context.Context) (domain.Profile, error)
	Update(ctx context.Context, patch ProfilePatch) (domain.Profile, error)
}

// ProfilePatch updates the profile field-by-field: nil fields keep
// their stored value, so a partial form submit never wipes the rest
// of the profile.
type ProfilePatch struct {
	Seller   PartyPatch    `json:"seller"`
	Defaults DefaultsPatch `json:"defaults"`
}

type PartyPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	TaxID   *string `json:"taxId"`
	Account *string `json:"account"`
	Bank    *string `json:"bank"`
}

type DefaultsPatch struct {
	HourlyRate      *float64 `json:"hourlyRate"`
	VatPercent      *float64 `json:"vatPercent"`
	Currency        *string  `json:"currency"`
	InvoicePlace    *string  `json:"invoicePlace"`
	ItemDescription *string  `json:"itemDescription"`
	ItemUnit        *string  `json:"itemUnit"`
	DueDays         *int     `json:"dueDays"`
}

type profileService struct {
	store *store.Store
}

func NewProfile(st *store.Store) *profileService {
	return &profileService{store: st}
}

func (s *profileService) Get(ctx context.Context) (domain.Profile, error) {
	doc, err := s.store.Load()
	if err != nil {
		return domain.Profile{}, err
	}
	return doc.Profile, nil
}

func (s *profileService) Update(ctx context.Context, patch ProfilePatch) (domain.Profile, error) {
	doc, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		doc.Profile = applyPatch(doc.Profile, patch)
		return doc, nil
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return doc.Profile, nil
}

func applyPatch(p domain.Profile, patch ProfilePatch) domain.Profile {
	if v := patch.Seller.Name; v != nil {
		p.Seller.Name = *v
	}
	if v := patch.Seller.Address; v != nil {
		p.Seller.Address = *v
	}
	if v := patch.Seller.City; v != nil {
		p.Seller.City = *v
	}
	if v := patch.Seller.TaxID; v != nil {
		p.Seller.TaxID = *v
	}
	if v := patch.Seller.Account; v != nil {
		p.Seller.Account = *v
	}
	if v := patch.Seller.Bank; v != nil {
		p.Seller.Bank = *v
	}
	if v := patch.Defaults.HourlyRate; v != nil {
		p.Defaults.HourlyRate = *v
	}
	if v := patch.Defaults.VatPercent; v != nil {
		p.Defaults.VatPercent = *v
	}
	if v := patch.Defaults.Currency; v != nil {
		p.Defaults.Currency = *v
	}
	if v := patch.Defaults.InvoicePlace; v != nil {
		p.Defaults.InvoicePlace = *v
	}
	if v := patch.Defaults.ItemDescription; v != nil {
		p.Defaults.ItemDescription = *v
	}
	if v := patch.Defaults.ItemUnit; v != nil {
		p.Defaults.ItemUnit = *v
	}
	if v := patch.Defaults.DueDays; v != nil {
		p.Defaults.DueDays = *v
	}
	return p
}
