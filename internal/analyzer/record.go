package analyzer

import (
	"sort"
	"strings"
	"time"

	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

// Record is the normalized view of one task used for analysis. It is
// derived only from tasks whose begin and end timestamps are both
// present, and is never mutated after construction.
type Record struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Group   string             `json:"group,omitempty"`
	Project *taskchute.Project `json:"project,omitempty"`
	Comment string             `json:"comment,omitempty"`

	// EstimatedTime is the task's estimate in minutes, when one was given.
	EstimatedTime *int64 `json:"estimated_time,omitempty"`

	// TimeGapRatio is actual over estimated minutes. It is only defined
	// when an estimate exists, and is not clamped: it may exceed 1.0, and
	// goes negative when the timestamps are inverted.
	TimeGapRatio *float64 `json:"time_gap_ratio,omitempty"`

	BeginTime time.Time `json:"begin_time"`
	EndTime   time.Time `json:"end_time"`

	// Timespan is end minus begin in whole minutes. Timestamps are taken
	// as supplied, so an inverted pair yields a negative timespan.
	Timespan int64 `json:"timespan"`

	Holiday bool `json:"holiday"`
}

// newRecord derives a Record from a task. The caller must have already
// checked that both timestamps are present.
func newRecord(t taskchute.Task) Record {
	begin := *t.BeginTime
	end := *t.EndTime
	timespan := int64(end.Sub(begin) / time.Minute)

	r := Record{
		ID:            t.ID,
		Name:          t.Name,
		Group:         groupLabel(t.Name),
		Project:       t.Project,
		Comment:       t.Comment,
		EstimatedTime: t.EstimatedTime,
		BeginTime:     begin,
		EndTime:       end,
		Timespan:      timespan,
		Holiday:       t.Holiday,
	}
	if t.EstimatedTime != nil {
		ratio := float64(timespan) / float64(*t.EstimatedTime)
		r.TimeGapRatio = &ratio
	}
	return r
}

// Equal reports record identity. Two records are the same record iff
// their ids match.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID
}

// Less orders records by begin time, breaking ties by id so that sorts
// are deterministic.
func (r Record) Less(other Record) bool {
	if r.BeginTime.Equal(other.BeginTime) {
		return r.ID < other.ID
	}
	return r.BeginTime.Before(other.BeginTime)
}

// groupLabel derives the record's group from its name: the first
// whitespace-delimited token when the name has at least two tokens,
// otherwise "" (no group).
func groupLabel(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return ""
	}
	return fields[0]
}

// normalize filters tasks down to the target project's complete entries
// and converts each one to a Record, ordered ascending by begin time.
func normalize(tasks []taskchute.Task, projectID string) []Record {
	var records []Record
	for _, t := range tasks {
		if t.ProjectID() != projectID || !t.Complete() {
			continue
		}
		records = append(records, newRecord(t))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Less(records[j])
	})
	return records
}
