package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rot1024/taskchutecloud-cli/internal/analyzer"
	"github.com/rot1024/taskchutecloud-cli/internal/config"
	"github.com/rot1024/taskchutecloud-cli/internal/output"
)

var (
	analyzeValue int64
	analyzeInput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <project-id>",
	Short: "Report time statistics for one project",
	Long: `Compute total, per-day, workday/holiday, and per-group work time
statistics for one project's completed tasks.

Tasks come from the local cache by default; pass --input to analyze a JSON
export file instead. The optional --value scalar (for example a page count)
adds a work-time-per-value ratio to every bucket.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int64Var(&analyzeValue, "value", 0, "Scalar for the per-value ratio (e.g. page count)")
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Analyze a JSON export file or directory instead of the cache")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	tasks, err := loadTasks(cfg, analyzeInput)
	if err != nil {
		return err
	}

	var value *int64
	if cmd.Flags().Changed("value") {
		value = &analyzeValue
	}

	projectID := args[0]
	result := analyzer.Analyze(tasks, projectID, value)
	if result == nil {
		return fmt.Errorf("project %q not found (no completed tasks reference it)", projectID)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Print(output.RenderAnalysis(result))
	return nil
}
