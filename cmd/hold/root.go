package main

import "github.com/spf13/cobra"

// newRootCmd assembles the CLI. Kept separate from main so tests can execute
// the command tree against in-memory streams.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hold",
		Short: "Explicit ownership transfers for resource-owning values",
		Long: `hold drives a resource-owning value type through explicit lifecycle
transfers: construct, clone, copy-assign, move-construct, move-assign,
and release. Every transition is reported by an observer and all storage
is accounted for by a counting allocator.`,
		SilenceUsage: true,
	}

	root.AddCommand(newScenarioCmd())
	return root
}
