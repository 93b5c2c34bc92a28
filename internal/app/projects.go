package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rot1024/taskchutecloud-cli/internal/config"
	"github.com/rot1024/taskchutecloud-cli/internal/output"
	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

var projectsInput string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects seen in the task log",
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().StringVar(&projectsInput, "input", "", "Read a JSON export file instead of the cache")
	rootCmd.AddCommand(projectsCmd)
}

// projectEntry is one row of the projects listing.
type projectEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount int    `json:"task_count"`
}

func runProjects(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}

	tasks, err := loadTasks(cfg, projectsInput)
	if err != nil {
		return err
	}

	entries := collectProjects(tasks)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	table := output.NewTable("id", "project", "tasks")
	table.AlignRight(2)
	for _, e := range entries {
		table.AddRow(e.ID, e.Name, fmt.Sprintf("%d", e.TaskCount))
	}
	table.Print()
	return nil
}

// collectProjects counts tasks per project, ordered by project name.
func collectProjects(tasks []taskchute.Task) []projectEntry {
	byID := make(map[string]*projectEntry)
	for _, t := range tasks {
		if t.Project == nil {
			continue
		}
		e, ok := byID[t.Project.ID]
		if !ok {
			e = &projectEntry{ID: t.Project.ID, Name: t.Project.Name}
			byID[t.Project.ID] = e
		}
		e.TaskCount++
	}

	entries := make([]projectEntry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name == entries[j].Name {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
