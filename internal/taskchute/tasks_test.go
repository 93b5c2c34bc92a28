package taskchute

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const exportJSON = `[
  {
    "id": "t1",
    "name": "Design Spec",
    "project": {"id": "p1", "name": "Book Writing"},
    "estimated_time": 90,
    "begin_time": "2026-01-05T09:00:00Z",
    "end_time": "2026-01-05T11:00:00Z",
    "holiday": false
  },
  {
    "id": "t2",
    "name": "Unscheduled Task",
    "holiday": true
  }
]`

func TestParseTasksFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")
	if err := os.WriteFile(path, []byte(exportJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	tasks, err := ParseTasksFile(path)
	if err != nil {
		t.Fatalf("ParseTasksFile: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	first := tasks[0]
	if first.ID != "t1" || first.Name != "Design Spec" {
		t.Errorf("first task = %+v", first)
	}
	if first.Project == nil || first.Project.ID != "p1" {
		t.Errorf("first.Project = %+v", first.Project)
	}
	if first.EstimatedTime == nil || *first.EstimatedTime != 90 {
		t.Errorf("first.EstimatedTime = %v", first.EstimatedTime)
	}
	if !first.Complete() {
		t.Error("first task should be complete")
	}
	want := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	if first.BeginTime == nil || !first.BeginTime.Equal(want) {
		t.Errorf("first.BeginTime = %v, want %v", first.BeginTime, want)
	}

	second := tasks[1]
	if second.Complete() {
		t.Error("second task should be incomplete")
	}
	if !second.Holiday {
		t.Error("second task should carry the holiday flag")
	}
	if second.ProjectID() != "" {
		t.Errorf("second.ProjectID() = %q, want empty", second.ProjectID())
	}
}

func TestParseTasksFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseTasksFile(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestParseTasksDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.json":   exportJSON,
		"b.json":   `[{"id": "t3", "name": "Another Task", "holiday": false}]`,
		"bad.json": "{not json",
		"skip.txt": "not a json file",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := ParseTasksDir(dir)
	if err != nil {
		t.Fatalf("ParseTasksDir: %v", err)
	}
	// Two from a.json, one from b.json; bad.json and skip.txt ignored.
	if len(tasks) != 3 {
		t.Errorf("got %d tasks, want 3", len(tasks))
	}
}

func TestParseTasksDir_Missing(t *testing.T) {
	tasks, err := ParseTasksDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("ParseTasksDir: %v", err)
	}
	if tasks != nil {
		t.Errorf("expected nil tasks for missing dir, got %v", tasks)
	}
}
