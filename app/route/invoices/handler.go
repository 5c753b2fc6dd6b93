package invoices

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"counter/app/respond"
	"counter/internal/invoice"
	"counter/internal/service"
)

type HandlerGroup struct {
	svc service.Invoices
}

func NewHandlerGroup(svc service.Invoices) *HandlerGroup {
	return &HandlerGroup{svc: svc}
}

func (hg *HandlerGroup) Mount(r chi.Router) {
	r.Get("/api/invoices", hg.handleList)
	r.Get("/api/invoices/{id}", hg.handleGet)
	r.Post("/api/invoices", hg.handleSave)
	r.Delete("/api/invoices/{id}", hg.handleDelete)
	r.Post("/api/invoices/{id}/pdf", hg.handleRenderPDF)
}

func (hg *HandlerGroup) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := hg.svc.List(r.Context())
	if err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, list)
}

func (hg *HandlerGroup) handleGet(w http.ResponseWriter, r *http.Request) {
	inv, err := hg.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respond.Err(w, r, statusFor(err), err)
		return
	}
	respond.JSON(w, r, http.StatusOK, inv)
}

type SaveInvoiceRequest struct {
	invoice.Raw
	ClientID string `json:"clientId"`
}

// SaveInvoiceRequest satisfies [render.Binder]
func (req *SaveInvoiceRequest) Bind(r *http.Request) error {
	if req.ClientID == "" && req.Buyer.Name == "" {
		return errors.New("either clientId or buyer must be supplied")
	}
	return nil
}

func (hg *HandlerGroup) handleSave(w http.ResponseWriter, r *http.Request) {
	req := &SaveInvoiceRequest{}
	if err := render.Bind(r, req); err != nil {
		respond.Err(w, r, http.StatusBadRequest, err)
		return
	}

	inv, err := hg.svc.Save(r.Context(), req.Raw, req.ClientID)
	if err != nil {
		respond.Err(w, r, statusFor(err), err)
		return
	}
	respond.JSON(w, r, http.StatusOK, inv)
}

func (hg *HandlerGroup) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := hg.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Err(w, r, http.StatusInternalServerError, err)
		return
	}
	render.NoContent(w, r)
}

type RenderPDFRequest struct {
	Output string `json:"output"`
}

type RenderPDFResponse struct {
	Path string `json:"path"`
}

func (hg *HandlerGroup) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req := RenderPDFRequest{}
	// The body is optional; without one the artifact lands next to
	// the data file as <id>.pdf.
	_ = render.DecodeJSON(r.Body, &req)
	if req.Output == "" {
		req.Output = fmt.Sprintf("%s.pdf", id)
	}

	if err := hg.svc.RenderPDF(r.Context(), id, req.Output); err != nil {
		respond.Err(w, r, statusFor(err), err)
		return
	}
	respond.JSON(w, r, http.StatusOK, RenderPDFResponse{Path: req.Output})
}

func statusFor(err error) int {
	if errors.Is(err, service.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
