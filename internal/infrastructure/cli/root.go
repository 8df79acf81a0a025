package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "cowork",
	Version: Version,
	Short:   "A flat-file management system for a coworking space",
	Long: `Cowork is a flat-file management system for a coworking space.
It tracks members and their plans, room bookings, the product inventory
and an append-only sales ledger, all persisted as JSON under .cowork/.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "workspace", "", "Workspace root directory (defaults to the current directory)")
}
