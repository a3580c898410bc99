package schedule

import (
	"fmt"
	"math"

	"produksi-golang/internal/constants"
	"produksi-golang/internal/storage"
)

// Generate builds the initial shift sequence from a plan configuration.
// Greedy bin-fill: earlier shifts are always filled before later ones, and
// whatever demand survives the day bound lands in a single overtime record.
// A non-positive need means no production is required and yields an empty
// plan, not an error.
func Generate(cfg storage.PlanConfig) []storage.ShiftRecord {
	need := cfg.DeliveryTarget - cfg.InitialStock
	if need <= 0 {
		return nil
	}

	tpp := cfg.BasePiecesTime
	if tpp <= 0 {
		return nil
	}

	bound := cfg.MonthLength
	if bound <= 0 {
		bound = 30
	}

	perShift := int(math.Floor(cfg.ShiftCapacitySeconds / tpp))
	if perShift < 0 {
		perShift = 0
	}

	var records []storage.ShiftRecord
	remaining := need

	for day := 1; day <= bound && remaining > 0; day++ {
		for _, shift := range []string{constants.Shift1, constants.Shift2} {
			if remaining <= 0 {
				break
			}
			alloc := perShift
			if alloc > remaining {
				alloc = remaining
			}
			if alloc <= 0 {
				break
			}
			records = append(records, newShiftRecord(day, shift, alloc, tpp))
			remaining -= alloc
		}
	}

	if remaining > 0 {
		records = append(records, newOvertimeRecord(bound+1, remaining, tpp))
	}

	return records
}

func newShiftRecord(day int, shift string, pcs int, tpp float64) storage.ShiftRecord {
	return storage.ShiftRecord{
		ID:           recordID(day, shift),
		Day:          day,
		Shift:        shift,
		Type:         constants.TypeNormal,
		Pcs:          pcs,
		ActualPcs:    pcs,
		PlanningHour: float64(pcs) * tpp / 3600,
		TimeMinutes:  float64(pcs) * tpp / 60,
		Status:       constants.StatusNormal,
	}
}

func newOvertimeRecord(day, pcs int, tpp float64) storage.ShiftRecord {
	return storage.ShiftRecord{
		ID:           recordID(day, constants.Shift1),
		Day:          day,
		Shift:        constants.Shift1,
		Type:         constants.TypeOvertime,
		Pcs:          pcs,
		ActualPcs:    pcs,
		OvertimeHour: float64(pcs) * tpp / 3600,
		TimeMinutes:  float64(pcs) * tpp / 60,
		Status:       constants.StatusNormal,
		Notes:        constants.OvertimeNote,
	}
}

func recordID(day int, shift string) string {
	return fmt.Sprintf("%d-%s", day, shift)
}
