package app

import (
	"fmt"
	"os"

	"github.com/rot1024/taskchutecloud-cli/internal/config"
	"github.com/rot1024/taskchutecloud-cli/internal/store"
	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

// loadTasks returns the task collection a command should operate on: the
// given JSON export (a file or a directory of files) when one was
// passed, otherwise the latest cached fetch snapshot.
func loadTasks(cfg *config.Config, inputPath string) ([]taskchute.Task, error) {
	if inputPath != "" {
		info, err := os.Stat(inputPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", inputPath, err)
		}
		var tasks []taskchute.Task
		if info.IsDir() {
			tasks, err = taskchute.ParseTasksDir(inputPath)
		} else {
			tasks, err = taskchute.ParseTasksFile(inputPath)
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", inputPath, err)
		}
		return tasks, nil
	}

	db, err := store.Open(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	defer func() { _ = db.Close() }()

	tasks, err := db.LatestTasks()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no cached tasks; run 'taskchute fetch' first or pass --input")
	}
	return tasks, nil
}
