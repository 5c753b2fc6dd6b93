package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"counter/app/respond"
	"counter/internal/service"
)

type HandlerGroup struct {
	svc service.Profile
}

func NewHandlerGroup(svc service.Profile) *HandlerGroup {
	return &HandlerGroup{svc: svc}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/api/profile", hg.handleGet)
	r.Put("/api/profile", hg.handleUpdate)
}

func (hg *HandlerGroup) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := hg.svc.Get(r.Context())
	if err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, p)
}

func (hg *HandlerGroup) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch service.ProfilePatch
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}

	p, err := hg.svc.Update(r.Context(), patch)
	if err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, p)
}
