package cmd

import (
	"github.com/spf13/cobra"

	"counter/app"
	"counter/internal/config"
	"counter/internal/logger"
	"counter/internal/service"
	"counter/internal/store"
	"counter/pkg/pdf"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "host to listen on (overrides COUNTER_HOST)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides COUNTER_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	st := store.New(cfg.DataFile)

	a := app.New(
		logger.WithComponent("http"),
		service.NewLedger(st),
		service.NewClients(st),
		service.NewProfile(st),
		service.NewInvoices(st, pdf.New()),
	).WithHost(cfg.Host).WithPort(cfg.Port)

	return a.Serve()
}
