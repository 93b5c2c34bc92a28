package taskchute

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ParseTasksFile reads a single JSON export file containing an array of
// tasks.
func ParseTasksFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return tasks, nil
}

// ParseTasksDir reads every .json file in a directory and concatenates
// the tasks they contain. Files that fail to read or parse are skipped;
// a missing directory yields no tasks rather than an error.
func ParseTasksDir(dir string) ([]Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var tasks []Task
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var batch []Task
		if err := json.Unmarshal(data, &batch); err != nil {
			continue
		}
		tasks = append(tasks, batch...)
	}
	return tasks, nil
}
