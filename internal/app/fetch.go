package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rot1024/taskchutecloud-cli/internal/config"
	"github.com/rot1024/taskchutecloud-cli/internal/store"
	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch tasks from TaskChute Cloud into the local cache",
	Long: `Fetch the full task log and project list from the TaskChute Cloud API
and store them as a new cache snapshot. The API token comes from the
config file or the TASKCHUTE_TOKEN environment variable.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.APIToken == "" {
		return fmt.Errorf("no API token configured; set api_token or TASKCHUTE_TOKEN")
	}

	client := taskchute.NewClient(cfg.APIBaseURL, cfg.APIToken)
	tasks, projects, err := client.FetchAll(cmd.Context())
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.CachePath)
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer func() { _ = db.Close() }()

	snapshotID, err := db.CreateSnapshot(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := db.InsertTasks(snapshotID, tasks); err != nil {
		return fmt.Errorf("storing tasks: %w", err)
	}

	fmt.Printf("fetched %d tasks across %d projects (snapshot %d)\n",
		len(tasks), len(projects), snapshotID)
	return nil
}
