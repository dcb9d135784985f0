package cmd

import (
	"github.com/spf13/cobra"

	"warehouse.GO/core/registry"
)

// Register queues an extension command. Call from init() in custom packages. Panics once Apply has run.
func Register(c *cobra.Command) {
	registry.Append(registry.GlobalRegistry, registry.KeyRegistryCmd, c)
}

// Apply adds the queued commands to root and locks the queue.
func Apply() {
	for _, c := range registry.List[*cobra.Command](registry.GlobalRegistry, registry.KeyRegistryCmd) {
		rootCmd.AddCommand(c)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
