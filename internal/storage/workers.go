package storage

type GetWorkers struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type SaveWorker struct {
	Name string `json:"name"`
}

type UpdateWorker struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// SaveAssignments replaces the manpower assignment of one record. The draft
// selection lives in the frontend; only the committed set reaches the server.
type SaveAssignments struct {
	SnapshotID  string  `json:"snapshot_id"`
	RecordID    string  `json:"record_id"`
	EmployeeIDs []int64 `json:"employee_ids"`
}
