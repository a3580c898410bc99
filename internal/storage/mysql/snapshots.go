package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"produksi-golang/internal/storage"
)

// SaveSnapshot replaces the whole stored sequence for the snapshot id.
// Recompilation produces a fresh sequence every time, so rows are deleted and
// reinserted instead of patched.
func (s *Storage) SaveSnapshot(ctx context.Context, snap storage.Snapshot) error {
	const op = "storage.mysql.SaveSnapshot"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plan_snapshots
			(id, name, created_at, base_pieces_time, initial_stock, delivery_target,
			 month, year, month_length, shift_capacity_seconds, pieces_per_person_hour)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name),
			base_pieces_time = VALUES(base_pieces_time),
			initial_stock = VALUES(initial_stock),
			delivery_target = VALUES(delivery_target),
			month = VALUES(month),
			year = VALUES(year),
			month_length = VALUES(month_length),
			shift_capacity_seconds = VALUES(shift_capacity_seconds),
			pieces_per_person_hour = VALUES(pieces_per_person_hour)
	`, snap.ID, snap.Name, snap.Date,
		snap.Config.BasePiecesTime, snap.Config.InitialStock, snap.Config.DeliveryTarget,
		snap.Config.Month, snap.Config.Year, snap.Config.MonthLength,
		snap.Config.ShiftCapacitySeconds, snap.Config.PiecesPerPersonHour)
	if err != nil {
		return fmt.Errorf("%s: upsert snapshot %s: %w", op, snap.ID, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM plan_record_manpower WHERE snapshot_id = ?`, snap.ID)
	if err != nil {
		return fmt.Errorf("%s: clear manpower for %s: %w", op, snap.ID, err)
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM plan_records WHERE snapshot_id = ?`, snap.ID)
	if err != nil {
		return fmt.Errorf("%s: clear records for %s: %w", op, snap.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plan_records
			(snapshot_id, record_id, day, shift, type, planning_hour, overtime_hour,
			 delivery, pcs, actual_pcs, time_minutes, status, jam_produksi_aktual, notes, sort)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare record insert: %w", op, err)
	}
	defer stmt.Close()

	mpStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plan_record_manpower (snapshot_id, record_id, employee_id) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%s: prepare manpower insert: %w", op, err)
	}
	defer mpStmt.Close()

	for i, rec := range snap.Records {
		_, err := stmt.ExecContext(ctx,
			snap.ID, rec.ID, rec.Day, rec.Shift, rec.Type,
			rec.PlanningHour, rec.OvertimeHour, rec.Delivery,
			rec.Pcs, rec.ActualPcs, rec.TimeMinutes,
			rec.Status, rec.JamProduksiAktual, rec.Notes, i)
		if err != nil {
			return fmt.Errorf("%s: insert record %s: %w", op, rec.ID, err)
		}
		for _, empID := range rec.ManpowerIDs {
			if _, err := mpStmt.ExecContext(ctx, snap.ID, rec.ID, empID); err != nil {
				return fmt.Errorf("%s: insert manpower for record %s: %w", op, rec.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

func (s *Storage) GetSnapshot(ctx context.Context, id string) (*storage.Snapshot, error) {
	const op = "storage.mysql.GetSnapshot"

	var snap storage.Snapshot
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, base_pieces_time, initial_stock, delivery_target,
		       month, year, month_length, shift_capacity_seconds, pieces_per_person_hour
		FROM plan_snapshots WHERE id = ?
	`, id).Scan(&snap.ID, &snap.Name, &snap.Date,
		&snap.Config.BasePiecesTime, &snap.Config.InitialStock, &snap.Config.DeliveryTarget,
		&snap.Config.Month, &snap.Config.Year, &snap.Config.MonthLength,
		&snap.Config.ShiftCapacitySeconds, &snap.Config.PiecesPerPersonHour)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: snapshot %s not found", op, id)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, day, shift, type, planning_hour, overtime_hour,
		       delivery, pcs, actual_pcs, time_minutes, status, jam_produksi_aktual, notes
		FROM plan_records WHERE snapshot_id = ? ORDER BY sort ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: query records: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec storage.ShiftRecord
		err := rows.Scan(&rec.ID, &rec.Day, &rec.Shift, &rec.Type,
			&rec.PlanningHour, &rec.OvertimeHour, &rec.Delivery,
			&rec.Pcs, &rec.ActualPcs, &rec.TimeMinutes,
			&rec.Status, &rec.JamProduksiAktual, &rec.Notes)
		if err != nil {
			return nil, fmt.Errorf("%s: scan record: %w", op, err)
		}
		snap.Records = append(snap.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachManpower(ctx, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &snap, nil
}

func (s *Storage) attachManpower(ctx context.Context, snap *storage.Snapshot) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, employee_id FROM plan_record_manpower
		WHERE snapshot_id = ? ORDER BY record_id, employee_id
	`, snap.ID)
	if err != nil {
		return fmt.Errorf("query manpower: %w", err)
	}
	defer rows.Close()

	byRecord := make(map[string][]int64)
	for rows.Next() {
		var recordID string
		var empID int64
		if err := rows.Scan(&recordID, &empID); err != nil {
			return fmt.Errorf("scan manpower: %w", err)
		}
		byRecord[recordID] = append(byRecord[recordID], empID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range snap.Records {
		snap.Records[i].ManpowerIDs = byRecord[snap.Records[i].ID]
	}
	return nil
}

func (s *Storage) ListSnapshots(ctx context.Context) ([]storage.SnapshotInfo, error) {
	const op = "storage.mysql.ListSnapshots"

	rows, err := s.db.QueryContext(ctx, `
		SELECT ps.id, ps.name, ps.created_at, ps.month, ps.year, COUNT(pr.record_id)
		FROM plan_snapshots ps
		LEFT JOIN plan_records pr ON pr.snapshot_id = ps.id
		GROUP BY ps.id, ps.name, ps.created_at, ps.month, ps.year
		ORDER BY ps.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var infos []storage.SnapshotInfo
	for rows.Next() {
		var info storage.SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Date, &info.Month, &info.Year, &info.RecordCount); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
