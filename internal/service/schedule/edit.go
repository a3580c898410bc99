package schedule

import (
	"produksi-golang/internal/constants"
	"produksi-golang/internal/storage"
)

// ApplyUpdate merges an edit command into a record. Bad input never errors:
// negative numbers keep the prior value, an unknown status keeps the prior
// status, oversized manpower lists are cut at maxManpower.
func ApplyUpdate(rec *storage.ShiftRecord, upd storage.UpdateRecord, maxManpower int) {
	if upd.ActualPcs != nil && *upd.ActualPcs >= 0 {
		rec.ActualPcs = *upd.ActualPcs
	}
	if upd.Delivery != nil && *upd.Delivery >= 0 {
		rec.Delivery = *upd.Delivery
	}
	if upd.JamProduksiAktual != nil && *upd.JamProduksiAktual >= 0 {
		rec.JamProduksiAktual = *upd.JamProduksiAktual
	}
	if upd.Status != nil {
		switch *upd.Status {
		case constants.StatusNormal, constants.StatusDisrupted, constants.StatusCompleted:
			rec.Status = *upd.Status
		}
	}
	if upd.Notes != nil {
		rec.Notes = *upd.Notes
	}
	if upd.ManpowerIDs != nil {
		rec.ManpowerIDs = capManpower(*upd.ManpowerIDs, maxManpower)
	}
}

func capManpower(ids []int64, max int) []int64 {
	if max <= 0 {
		max = 6
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
		if len(out) == max {
			break
		}
	}
	return out
}

// CleanupRoster drops manpower references that no longer resolve to an active
// roster member. The record itself stays; only the dangling ids go.
func CleanupRoster(records []storage.ShiftRecord, workers []storage.GetWorkers) {
	valid := make(map[int64]bool, len(workers))
	for _, w := range workers {
		if w.IsActive {
			valid[w.ID] = true
		}
	}

	for i := range records {
		ids := records[i].ManpowerIDs
		kept := ids[:0]
		for _, id := range ids {
			if valid[id] {
				kept = append(kept, id)
			}
		}
		records[i].ManpowerIDs = kept
	}
}
