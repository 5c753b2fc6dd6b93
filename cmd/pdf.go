package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"counter/internal/config"
	"counter/internal/logger"
	"counter/internal/service"
	"counter/internal/store"
	"counter/pkg/pdf"
)

var pdfOutput string

var pdfCmd = &cobra.Command{
	Use:     "pdf [invoice-id]",
	Short:   "Render a stored invoice to a PDF file",
	Example: `  counter pdf 4f7c4a1e-... -o invoice.pdf`,
	Args:    cobra.ExactArgs(1),
	RunE:    runPDF,
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfOutput, "output", "o", "", "output path (default <invoice-id>.pdf)")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	id := args[0]
	out := pdfOutput
	if out == "" {
		out = id + ".pdf"
	}

	svc := service.NewInvoices(store.New(cfg.DataFile), pdf.New())
	if err := svc.RenderPDF(cmd.Context(), id, out); err != nil {
		return fmt.Errorf("rendering invoice %s: %w", id, err)
	}

	l := logger.WithComponent("pdf")
	l.Info().Str("invoice", id).Str("output", out).Msg("invoice rendered")
	return nil
}
