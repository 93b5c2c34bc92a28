// Package store provides the SQLite cache of fetched TaskChute tasks.
package store

import (
	"database/sql"
	"time"

	"github.com/rot1024/taskchutecloud-cli/internal/taskchute"
)

// Snapshot represents one point-in-time fetch of the task list.
type Snapshot struct {
	ID      int64     `json:"id"`
	TakenAt time.Time `json:"taken_at"`
	Source  string    `json:"source"`
}

// CreateSnapshot inserts a new snapshot and returns its ID. Source
// records where the tasks came from (the API base URL or a file path).
func (db *DB) CreateSnapshot(source string) (int64, error) {
	result, err := db.conn.Exec(
		"INSERT INTO snapshots (taken_at, source) VALUES (?, ?)",
		time.Now().UTC().Format(time.RFC3339), source,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) GetLatestSnapshot() (*Snapshot, error) {
	row := db.conn.QueryRow("SELECT id, taken_at, source FROM snapshots ORDER BY id DESC LIMIT 1")

	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Source)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}

// InsertTask stores one task under a snapshot.
func (db *DB) InsertTask(snapshotID int64, t taskchute.Task) error {
	var projectID, projectName sql.NullString
	if t.Project != nil {
		projectID = sql.NullString{String: t.Project.ID, Valid: true}
		projectName = sql.NullString{String: t.Project.Name, Valid: true}
	}

	var estimated sql.NullInt64
	if t.EstimatedTime != nil {
		estimated = sql.NullInt64{Int64: *t.EstimatedTime, Valid: true}
	}

	_, err := db.conn.Exec(
		`INSERT INTO tasks
		(snapshot_id, task_id, name, project_id, project_name, comment,
		 estimated_time, begin_time, end_time, holiday)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshotID, t.ID, t.Name, projectID, projectName, t.Comment,
		estimated, nullTime(t.BeginTime), nullTime(t.EndTime), t.Holiday,
	)
	return err
}

// InsertTasks stores a batch of tasks under a snapshot.
func (db *DB) InsertTasks(snapshotID int64, tasks []taskchute.Task) error {
	for _, t := range tasks {
		if err := db.InsertTask(snapshotID, t); err != nil {
			return err
		}
	}
	return nil
}

// GetTasks returns all tasks stored under a snapshot, in insertion order.
func (db *DB) GetTasks(snapshotID int64) ([]taskchute.Task, error) {
	rows, err := db.conn.Query(
		`SELECT task_id, name, project_id, project_name, comment,
		 estimated_time, begin_time, end_time, holiday
		 FROM tasks WHERE snapshot_id = ? ORDER BY id`,
		snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tasks []taskchute.Task
	for rows.Next() {
		var t taskchute.Task
		var projectID, projectName, comment sql.NullString
		var estimated sql.NullInt64
		var begin, end sql.NullString
		if err := rows.Scan(
			&t.ID, &t.Name, &projectID, &projectName, &comment,
			&estimated, &begin, &end, &t.Holiday,
		); err != nil {
			return nil, err
		}
		if projectID.Valid {
			t.Project = &taskchute.Project{ID: projectID.String, Name: projectName.String}
		}
		t.Comment = comment.String
		if estimated.Valid {
			v := estimated.Int64
			t.EstimatedTime = &v
		}
		t.BeginTime = parseTime(begin)
		t.EndTime = parseTime(end)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// LatestTasks returns the tasks of the most recent snapshot, or nil when
// the cache is empty.
func (db *DB) LatestTasks() ([]taskchute.Task, error) {
	snap, err := db.GetLatestSnapshot()
	if err != nil || snap == nil {
		return nil, err
	}
	return db.GetTasks(snap.ID)
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
