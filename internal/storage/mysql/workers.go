package mysql

import (
	"context"
	"fmt"

	"produksi-golang/internal/storage"
)

func (s *Storage) GetAllWorkers(ctx context.Context) ([]storage.GetWorkers, error) {
	const op = "storage.mysql.GetAllWorkers"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, is_active FROM plan_employees ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var workers []storage.GetWorkers
	for rows.Next() {
		var w storage.GetWorkers
		if err := rows.Scan(&w.ID, &w.Name, &w.IsActive); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

func (s *Storage) SaveWorker(ctx context.Context, req storage.SaveWorker) (int64, error) {
	const op = "storage.mysql.SaveWorker"

	exec, err := s.db.ExecContext(ctx, `
		INSERT INTO plan_employees (name, is_active) VALUES (?, TRUE)
	`, req.Name)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return exec.LastInsertId()
}

func (s *Storage) UpdateWorker(ctx context.Context, req storage.UpdateWorker) error {
	const op = "storage.mysql.UpdateWorker"

	_, err := s.db.ExecContext(ctx, `
		UPDATE plan_employees SET name = ?, is_active = ? WHERE id = ?
	`, req.Name, req.IsActive, req.ID)
	if err != nil {
		return fmt.Errorf("%s: update worker id=%d: %w", op, req.ID, err)
	}

	return nil
}

// DeleteWorker deactivates a roster member and strips its id from every
// record assignment. Referential cleanup only: the records stay.
func (s *Storage) DeleteWorker(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteWorker"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM plan_record_manpower WHERE employee_id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: cleanup assignments for worker id=%d: %w", op, id, err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE plan_employees SET is_active = FALSE WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: deactivate worker id=%d: %w", op, id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// SaveRecordAssignments replaces one record's committed manpower set.
func (s *Storage) SaveRecordAssignments(ctx context.Context, req storage.SaveAssignments) error {
	const op = "storage.mysql.SaveRecordAssignments"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM plan_record_manpower WHERE snapshot_id = ? AND record_id = ?
	`, req.SnapshotID, req.RecordID)
	if err != nil {
		return fmt.Errorf("%s: clear assignments for record %s: %w", op, req.RecordID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plan_record_manpower (snapshot_id, record_id, employee_id) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare insert: %w", op, err)
	}
	defer stmt.Close()

	for _, empID := range req.EmployeeIDs {
		if _, err := stmt.ExecContext(ctx, req.SnapshotID, req.RecordID, empID); err != nil {
			return fmt.Errorf("%s: insert assignment employee_id=%d: %w", op, empID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}
