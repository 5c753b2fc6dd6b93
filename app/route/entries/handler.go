package entries

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"counter/app/respond"
	"counter/internal/service"
)

type HandlerGroup struct {
	svc service.Ledger
}

func NewHandlerGroup(svc service.Ledger) *HandlerGroup {
	return &HandlerGroup{svc: svc}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/api/entries", hg.handleList)
	r.Put("/api/entries/{date}", hg.handleUpsert)
	r.Delete("/api/entries/{date}", hg.handleRemove)
	r.Delete("/api/entries", hg.handleClearMonth)
	r.Get("/api/summary", hg.handleSummary)
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := hg.svc.Entries(r.Context())
	if err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, entries)
}

type UpsertEntryRequest struct {
	Hours string `json:"hours"`
}

// UpsertEntryRequest satisfies [render.Binder]
func (req *UpsertEntryRequest) Bind(r *http.Request) error {
	if req.Hours == "" {
		return errors.New("hours is required")
	}
	return nil
}

func (hg *HandlerGroup) handleUpsert(w http.ResponseWriter, r *http.Request) {
	req := &UpsertEntryRequest{}
	if err := render.Bind(r, req); err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}

	entries, err := hg.svc.UpsertEntry(r.Context(), chi.URLParam(r, "date"), req.Hours)
	if err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, entries)
}

func (hg *HandlerGroup) handleRemove(w http.ResponseWriter, r *http.Request) {
	entries, err := hg.svc.RemoveEntry(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, entries)
}

func (hg *HandlerGroup) handleClearMonth(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		respond.Err(w, r, http.StatusBadRequest, errors.New("month query parameter is required"))
		return
	}

	entries, err := hg.svc.ClearMonth(r.Context(), month)
	if err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, entries)
}

func (hg *HandlerGroup) handleSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respond.Err(w, r, http.StatusBadRequest, errors.New("date query parameter is required"))
		return
	}

	summary, err := hg.svc.Summary(r.Context(), date)
	if err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, summary)
}
