package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"counter/internal/domain"
	"counter/internal/store"
)

type Clients interface {
	List(ctx context.Context) ([]domain.Client, error)
	Upsert(ctx context.Context, client domain.Client) (domain.Client, error)
	Delete(ctx context.Context, id string) error
}

type clientsService struct {
	store *store.Store
}

func NewClients(st *store.Store) *clientsService {
	return &clientsService{store: st}
}

func (s *clientsService) List(ctx context.Context) ([]domain.Client, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Clients, nil
}

func (s *clientsService) Upsert(ctx context.Context, client domain.Client) (domain.Client, error) {
	if strings.TrimSpace(client.Name) == "" {
		return domain.Client{}, ErrClientNameRequired
	}
	if client.ID == "" {
		client.ID = uuid.NewString()
	}

	_, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		for i, existing := range doc.Clients {
			if existing.ID == client.ID {
				doc.Clients[i] = client
				return doc, nil
			}
		}
		doc.Clients = append(doc.Clients, client)
		return doc, nil
	})
	if err != nil {
		return domain.Client{}, err
	}
	return client, nil
}

func (s *clientsService) Delete(ctx context.Context, id string) error {
	_, err := s.store.Update(func(doc domain.Document) (domain.Document, error) {
		clients := doc.Clients[:0:0]
		for _, c := range doc.Clients {
			if c.ID != id {
				clients = append(clients, c)
			}
		}
		doc.Clients = clients
		return doc, nil
	})
	return err
}
