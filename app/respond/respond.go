// Package respond holds the JSON response helpers shared by the
// route handler groups.
package respond

import (
	"net/http"

	"github.com/go-chi/render"
)

type errResponse struct {
	Error string `json:"error"`
}

func Err(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, errResponse{Error: err.Error()})
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}
