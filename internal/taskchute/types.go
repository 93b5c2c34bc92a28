// Package taskchute defines the TaskChute Cloud task model and provides
// loaders for exported task data, from local JSON exports or the API.
package taskchute

import "time"

// Project identifies the project a task is logged under.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is one logged unit of work as recorded by TaskChute Cloud.
// Optional fields are pointers; a nil begin or end time means the task
// was never started or never finished.
type Task struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Project       *Project   `json:"project,omitempty"`
	Comment       string     `json:"comment,omitempty"`
	EstimatedTime *int64     `json:"estimated_time,omitempty"`
	BeginTime     *time.Time `json:"begin_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Holiday       bool       `json:"holiday"`
}

// Complete reports whether the task has both begin and end timestamps
// recorded. Only complete tasks carry measurable work time.
func (t Task) Complete() bool {
	return t.BeginTime != nil && t.EndTime != nil
}

// ProjectID returns the id of the task's project, or "" when the task is
// not assigned to any project.
func (t Task) ProjectID() string {
	if t.Project == nil {
		return ""
	}
	return t.Project.ID
}
