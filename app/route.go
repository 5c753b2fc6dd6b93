package app

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"counter/app/route/clients"
	"counter/app/route/entries"
	"counter/app/route/invoices"
	"counter/app/route/profile"
)

func (a *App) RegisterRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)

	entries.NewHandlerGroup(a.svcLedger).Mount(a.router)
	clients.NewHandlerGroup(a.svcClients).Mount(a.router)
	profile.NewHandlerGroup(a.svcProfile).Mount(a.router)
	invoices.NewHandlerGroup(a.svcInvoices).Mount(a.router)

	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("app/static/"))))
}
