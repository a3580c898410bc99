package schedule

import "produksi-golang/internal/storage"

// ExportRows flattens a plan view into one row per record for the excel
// report. Column meaning mirrors the production board: opening stock before
// the shift, delivery owed, budget hours, derived pcs, actuals.
func ExportRows(view PlanView) []storage.ExportRow {
	rows := make([]storage.ExportRow, 0, len(view.Records))
	for i, v := range view.Records {
		rows = append(rows, storage.ExportRow{
			Seq:          i + 1,
			Day:          v.Day,
			Shift:        v.Shift,
			TimeWindow:   v.TimeWindow,
			Status:       v.Status,
			OpeningStock: clampNonNeg(v.Derived.PrevStock),
			Delivery:     v.Delivery,
			PlanningHour: v.PlanningHour,
			OvertimeHour: v.OvertimeHour,
			PlanningPcs:  v.Derived.PlanningPcs,
			OvertimePcs:  v.Derived.OvertimePcs,
			ActualOutput: v.Derived.ActualOutput,
			ActualStock:  clampNonNeg(v.Derived.ActualStock),
			ActualHours:  v.JamProduksiAktual,
			Notes:        v.Notes,
		})
	}
	return rows
}

// clampNonNeg keeps reported stock at zero or above. The derived fields keep
// the exact arithmetic; only the report hides the negative.
func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
