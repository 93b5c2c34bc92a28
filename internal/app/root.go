// Package app contains the Cobra command tree for the taskchute CLI.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "taskchute",
	Short: "Analyze time-tracked tasks from TaskChute Cloud",
	Long: `taskchute fetches your TaskChute Cloud task log and reports how a
project's time was actually spent: total and per-day work time, workday
versus holiday breakdowns, and per-group statistics derived from task names.

Fetch your tasks once with 'taskchute fetch', then run
'taskchute analyze <project-id>' as often as you like against the cache.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("taskchute", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  fetch     Fetch tasks from TaskChute Cloud into the local cache")
		fmt.Println("  analyze   Report time statistics for one project")
		fmt.Println("  projects  List projects seen in the task log")
		fmt.Println("  tasks     List tasks in the task log")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/taskchute/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}
