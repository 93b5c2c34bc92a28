package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rot1024/taskchutecloud-cli/internal/config"
	"github.com/rot1024/taskchutecloud-cli/internal/output"
	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

var (
	tasksInput   string
	tasksProject string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks in the task log",
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().StringVar(&tasksInput, "input", "", "Read a JSON export file instead of the cache")
	tasksCmd.Flags().StringVar(&tasksProject, "project", "", "Only list tasks of this project id")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	tasks, err := loadTasks(cfg, tasksInput)
	if err != nil {
		return err
	}

	if tasksProject != "" {
		filtered := tasks[:0:0]
		for _, t := range tasks {
			if t.ProjectID() == tasksProject {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	}

	table := output.NewTable("id", "task", "project", "begin", "end", "est")
	table.AlignRight(5)
	for _, t := range tasks {
		table.AddRow(
			t.ID,
			t.Name,
			projectName(t),
			formatTaskTime(t.BeginTime),
			formatTaskTime(t.EndTime),
			formatEstimate(t.EstimatedTime),
		)
	}
	table.Print()
	return nil
}

func projectName(t taskchute.Task) string {
	if t.Project == nil {
		return "-"
	}
	return t.Project.Name
}

func formatTaskTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func formatEstimate(m *int64) string {
	if m == nil {
		return "-"
	}
	return output.FormatMinutes(*m)
}
