package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
)

var evictCmd = &cobra.Command{
	Use:   "evict [name|shortcut]",
	Short: "Delete a project's folder but keep it registered",
	Long: `Delete a project's folder from disk while keeping its registration.
"xclaunch open" clones it again from its remote.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewEvictProjectCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background()))
	},
}

func init() {
	rootCmd.AddCommand(evictCmd)
}
