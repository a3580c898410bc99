package schedule

import (
	"produksi-golang/internal/constants"
	"produksi-golang/internal/service/capacity"
	"produksi-golang/internal/storage"
)

// Recompile folds every disrupted shift's shortfall into the single overtime
// record, creating one when the plan has none. The compensation is computed
// from scratch on every call (overtime actual = its own allocation + total
// shortfall), so running it twice without new disruptions changes nothing.
// The input slice is not mutated; callers replace the whole sequence.
func Recompile(records []storage.ShiftRecord, model *capacity.Model, basePiecesTime float64, overtimeDay int) []storage.ShiftRecord {
	out := make([]storage.ShiftRecord, len(records))
	copy(out, records)

	totalDisrupted := 0
	for i := range out {
		rec := out[i]
		if rec.Status != constants.StatusDisrupted || rec.Type == constants.TypeOvertime {
			continue
		}
		tpp := model.EffectiveCycleTime(basePiecesTime, len(rec.ManpowerIDs))
		shortfall := pcsFromHours(rec.PlanningHour, tpp) + pcsFromHours(rec.OvertimeHour, tpp) - rec.ActualPcs
		if shortfall > 0 {
			totalDisrupted += shortfall
		}
	}

	if totalDisrupted <= 0 {
		return out
	}

	tpp := model.EffectiveCycleTime(basePiecesTime, 0)

	for i := range out {
		if out[i].Type != constants.TypeOvertime {
			continue
		}
		out[i].ActualPcs = out[i].Pcs + totalDisrupted
		out[i].TimeMinutes = float64(out[i].ActualPcs) * tpp / 60
		return out
	}

	// Pcs stays 0: the compensation was never part of the generated
	// allocation, its whole output exists to cover the shortfall.
	comp := storage.ShiftRecord{
		ID:          recordID(overtimeDay, constants.Shift1),
		Day:         overtimeDay,
		Shift:       constants.Shift1,
		Type:        constants.TypeOvertime,
		ActualPcs:   totalDisrupted,
		TimeMinutes: float64(totalDisrupted) * tpp / 60,
		Status:      constants.StatusNormal,
		Notes:       constants.OvertimeNote,
	}
	return append(out, comp)
}
