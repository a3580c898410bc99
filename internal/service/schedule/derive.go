package schedule

import (
	"math"

	"produksi-golang/internal/constants"
	"produksi-golang/internal/service/capacity"
	"produksi-golang/internal/storage"
)

// Derive walks the sequence in order and computes every record's derived
// fields. Stock chains through the whole plan: each record's opening stock is
// the previous record's actual stock, seeded from initialStock. The canonical
// records are never written to; results live in a parallel slice.
func Derive(records []storage.ShiftRecord, model *capacity.Model, basePiecesTime float64, initialStock int) []storage.DerivedFields {
	derived := make([]storage.DerivedFields, 0, len(records))
	for i := range records {
		derived = append(derived, DeriveRecord(records, i, derived, model, basePiecesTime, initialStock))
	}
	return derived
}

// DeriveRecord derives one record's fields given all prior records' already
// derived fields. Callers must derive in ascending index order; prior must
// hold at least idx entries.
func DeriveRecord(records []storage.ShiftRecord, idx int, prior []storage.DerivedFields, model *capacity.Model, basePiecesTime float64, initialStock int) storage.DerivedFields {
	rec := records[idx]
	tpp := model.EffectiveCycleTime(basePiecesTime, len(rec.ManpowerIDs))

	df := storage.DerivedFields{RecordID: rec.ID}

	df.PlanningPcs = pcsFromHours(rec.PlanningHour, tpp)
	df.OvertimePcs = pcsFromHours(rec.OvertimeHour, tpp)
	df.TargetOutput = df.PlanningPcs + df.OvertimePcs
	df.ActualOutput = actualOutput(rec, df.TargetOutput)

	if idx == 0 {
		df.PrevStock = initialStock
		df.CumDelivery = rec.Delivery
		df.CumOutput = df.ActualOutput
	} else {
		prev := prior[idx-1]
		df.PrevStock = prev.ActualStock
		df.CumDelivery = prev.CumDelivery + rec.Delivery
		df.CumOutput = prev.CumOutput + df.ActualOutput
	}

	df.ActualStock = df.PrevStock + df.ActualOutput - rec.Delivery
	df.PlannedStock = df.PrevStock + df.TargetOutput

	df.CycleTimeHours = roundUpTenth(float64(df.ActualOutput) * tpp / 3600)
	df.DeltaHours = rec.JamProduksiAktual - (rec.PlanningHour + rec.OvertimeHour)

	return df
}

func pcsFromHours(hours, tpp float64) int {
	if hours <= 0 || tpp <= 0 {
		return 0
	}
	// epsilon keeps the float round-trip from generation (pcs -> hours -> pcs)
	// from flooring one piece away
	return int(math.Floor(hours*3600/tpp + 1e-9))
}

// actualOutput treats a zero actual as "not reported yet" and falls back to
// the target, except on a disrupted shift where zero really means zero.
func actualOutput(rec storage.ShiftRecord, target int) int {
	if rec.ActualPcs == 0 && rec.Status != constants.StatusDisrupted {
		return target
	}
	if rec.ActualPcs < 0 {
		return 0
	}
	return rec.ActualPcs
}

// roundUpTenth rounds up to one decimal for display: ceil(x*10)/10.
func roundUpTenth(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Ceil(x*10) / 10
}
