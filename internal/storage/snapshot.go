package storage

import "time"

// Snapshot is a named, versionless save of a whole plan.
type Snapshot struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Date    time.Time     `json:"date"`
	Config  PlanConfig    `json:"config"`
	Records []ShiftRecord `json:"records"`
}

// SnapshotInfo is the listing row, records omitted.
type SnapshotInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	RecordCount int       `json:"record_count"`
}
