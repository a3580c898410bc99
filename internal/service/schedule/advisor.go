package schedule

import (
	"fmt"

	"produksi-golang/internal/storage"
)

// Advisory codes. Informational only; nothing downstream acts on them.
const (
	AdviceStockSufficient  = "stock_sufficient"
	AdviceInsufficientTime = "insufficient_time"
)

// Check runs the advisory rules over one record and its derived fields. Both
// rules are evaluated independently; a record can collect both advisories.
func Check(rec storage.ShiftRecord, df storage.DerivedFields, timePerPiece float64) []storage.Advisory {
	var advisories []storage.Advisory

	if rec.Delivery > 0 && df.ActualStock >= rec.Delivery {
		advisories = append(advisories, storage.Advisory{
			RecordID: rec.ID,
			Code:     AdviceStockSufficient,
			Message:  fmt.Sprintf("stock %d already covers the delivery of %d pcs, production is unnecessary", df.ActualStock, rec.Delivery),
		})
	}

	if timePerPiece > 0 {
		availableSeconds := (rec.PlanningHour + rec.OvertimeHour) * 3600
		requiredPcs := rec.Delivery - df.ActualStock + df.ActualOutput
		if requiredPcs > 0 && availableSeconds < float64(requiredPcs)*timePerPiece {
			advisories = append(advisories, storage.Advisory{
				RecordID: rec.ID,
				Code:     AdviceInsufficientTime,
				Message:  fmt.Sprintf("available time covers less than the %d pcs needed this shift", requiredPcs),
			})
		}
	}

	return advisories
}
