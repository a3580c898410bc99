package schedule

import "produksi-golang/internal/storage"

// Totals sums the per-record fields into whole-plan totals. The overtime
// record participates like any other record.
func Totals(records []storage.ShiftRecord, derived []storage.DerivedFields) storage.PlanTotals {
	var t storage.PlanTotals
	for i := range records {
		t.Delivery += records[i].Delivery
		t.ActualHours += records[i].JamProduksiAktual
		if i < len(derived) {
			t.PlanningPcs += derived[i].PlanningPcs
			t.OvertimePcs += derived[i].OvertimePcs
			t.OutputActual += derived[i].ActualOutput
		}
	}
	return t
}
