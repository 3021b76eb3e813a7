// internal/commands/list.go
package commands

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing resources",
	Long:  `The 'list' command groups subcommands that list configured models or the command tree.`,
}

func init() {
	rootCmd.AddCommand(listCmd)
}
