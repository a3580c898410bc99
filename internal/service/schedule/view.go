package schedule

import (
	"time"

	"produksi-golang/internal/constants"
	"produksi-golang/internal/service/capacity"
	"produksi-golang/internal/storage"
)

// RecordView pairs a record with its derived fields for rendering.
type RecordView struct {
	storage.ShiftRecord
	Derived    storage.DerivedFields `json:"derived"`
	TimeWindow string                `json:"time_window"`
}

// DayGroup is one calendar day of the two-shift view. Shift 1 precedes
// shift 2; cumulative values carry across groups because derivation runs over
// the flat ordered sequence.
type DayGroup struct {
	Day     int          `json:"day"`
	Records []RecordView `json:"records"`
}

// PlanView is the full assembled output for the UI: derived records, the
// per-day grouping, plan totals and advisories.
type PlanView struct {
	SnapshotID         string             `json:"snapshot_id,omitempty"`
	Name               string             `json:"name,omitempty"`
	Config             storage.PlanConfig `json:"config"`
	Records            []RecordView       `json:"records"`
	Days               []DayGroup         `json:"days"`
	Totals             storage.PlanTotals `json:"totals"`
	Advisories         []storage.Advisory `json:"advisories"`
	NoProductionNeeded bool               `json:"no_production_needed"`
}

// BuildView derives the whole sequence in order and assembles totals,
// advisories and the per-day grouping. offDay is the weekly day excluded from
// the grouped view; out-of-range and off-day records stay in Records but are
// left out of Days.
func BuildView(cfg storage.PlanConfig, records []storage.ShiftRecord, model *capacity.Model, offDay time.Weekday) PlanView {
	derived := Derive(records, model, cfg.BasePiecesTime, cfg.InitialStock)

	views := make([]RecordView, 0, len(records))
	var advisories []storage.Advisory
	for i := range records {
		rec := records[i]
		tpp := model.EffectiveCycleTime(cfg.BasePiecesTime, len(rec.ManpowerIDs))
		advisories = append(advisories, Check(rec, derived[i], tpp)...)
		views = append(views, RecordView{
			ShiftRecord: rec,
			Derived:     derived[i],
			TimeWindow:  timeWindow(rec),
		})
	}

	return PlanView{
		Config:             cfg,
		Records:            views,
		Days:               groupByDay(cfg, views, offDay),
		Totals:             Totals(records, derived),
		Advisories:         advisories,
		NoProductionNeeded: len(records) == 0,
	}
}

func timeWindow(rec storage.ShiftRecord) string {
	if rec.Type == constants.TypeOvertime {
		return constants.OvertimeWindow
	}
	return constants.TimeWindows[rec.Shift]
}

// groupByDay keeps only in-range working days. Records are never deleted by
// falling out of range; they just stop appearing in the grouped view.
func groupByDay(cfg storage.PlanConfig, views []RecordView, offDay time.Weekday) []DayGroup {
	bound := cfg.MonthLength
	if bound <= 0 {
		bound = 30
	}

	byDay := make(map[int]*DayGroup)
	var order []int
	for _, v := range views {
		if v.Day < 1 || v.Day > bound {
			continue
		}
		if isOffDay(cfg, v.Day, offDay) {
			continue
		}
		g, ok := byDay[v.Day]
		if !ok {
			g = &DayGroup{Day: v.Day}
			byDay[v.Day] = g
			order = append(order, v.Day)
		}
		g.Records = append(g.Records, v)
	}

	groups := make([]DayGroup, 0, len(order))
	for _, d := range order {
		groups = append(groups, *byDay[d])
	}
	return groups
}

// isOffDay reports whether the day falls on the weekly off day. Months with
// unparseable labels skip the weekday check and only apply the range bound.
func isOffDay(cfg storage.PlanConfig, day int, offDay time.Weekday) bool {
	m, err := time.Parse("January", cfg.Month)
	if err != nil {
		return false
	}
	date := time.Date(cfg.Year, m.Month(), day, 0, 0, 0, 0, time.UTC)
	return date.Weekday() == offDay
}

// Commit writes the reported outputs back onto the canonical records. This is
// the only place derived values touch records; derivation itself stays pure
// so repeated recomputes are idempotent.
func Commit(records []storage.ShiftRecord, derived []storage.DerivedFields) []storage.ShiftRecord {
	out := make([]storage.ShiftRecord, len(records))
	copy(out, records)
	for i := range out {
		if i < len(derived) {
			out[i].ActualPcs = derived[i].ActualOutput
		}
	}
	return out
}
