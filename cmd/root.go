package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storageDriver string

var rootCmd = &cobra.Command{
	Use:           "warehouse",
	Short:         "창고 관리: inbound, inventory, outbound, supplier and client records",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "Storage driver: sqlite|mysql|postgres|redis|badger|memory (default STORAGE_DRIVER)")
}

// Execute applies registered commands and runs the root command. Exits 1 on error.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
