package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"counter/internal/service"
)

type App struct {
	host string
	port int

	log    zerolog.Logger
	router chi.Router

	svcLedger   service.Ledger
	svcClients  service.Clients
	svcProfile  service.Profile
	svcInvoices service.Invoices
}

func New(log zerolog.Logger, svcLedger service.Ledger, svcClients service.Clients, svcProfile service.Profile, svcInvoices service.Invoices) *App {
	app := &App{
		host: "localhost",
		port: 3000,

		router: chi.NewRouter(),
		log:    log,

		svcLedger:   svcLedger,
		svcClients:  svcClients,
		svcProfile:  svcProfile,
		svcInvoices: svcInvoices,
	}

	app.RegisterRoutes()

	return app
}

func (a *App) WithHost(host string) *App {
	a.host = host
	return a
}

func (a *App) WithPort(port int) *App {
	a.port = port
	return a
}

// Router exposes the configured handler, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) Serve() error {
	addr := fmt.Sprintf("%s:%d", a.host, a.port)
	server := http.Server{
		Addr:    addr,
		Handler: a.router,

		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	a.log.Info().Str("addr", addr).Msg("server started listening")

	return server.ListenAndServe()
}
