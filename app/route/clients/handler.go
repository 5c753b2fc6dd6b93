package clients

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"counter/app/respond"
	"counter/internal/domain"
	"counter/internal/service"
)

type HandlerGroup struct {
	svc service.Clients
}

func NewHandlerGroup(svc service.Clients) *HandlerGroup {
	return &HandlerGroup{svc: svc}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/api/clients", hg.handleList)
	r.Post("/api/clients", hg.handleUpsert)
	r.Delete("/api/clients/{id}", hg.handleDelete)
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := hg.svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, list)
}

type UpsertClientRequest struct {
	domain.Client
}

// UpsertClientRequest satisfies [render.Binder]
func (req *UpsertClientRequest) Bind(r *http.Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("client name is required")
	}
	return nil
}

func (hg *HandlerGroup) handleUpsert(w http.ResponseWriter, r *http.Request) {
	req := &UpsertClientRequest{}
	if err := render.Bind(r, req); err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}

	client, err := hg.svc.Upsert(r.Context(), req.Client)
	if err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, client)
}

func (hg *HandlerGroup) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := hg.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	render.NoContent(w, r)
}
