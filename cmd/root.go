package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"counter/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "counter",
	Short: "counter - personal time tracking and invoicing",
	Long: `counter keeps a ledger of worked hours per day, a client address
book and a seller profile, and builds invoices whose totals derive
from the logged hours. State lives in a single JSON file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l := logger.WithComponent("cmd")
		l.Error().Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
