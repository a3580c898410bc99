package storage

// PlanConfig is the configuration a plan was generated from. It travels with
// the snapshot so that reloading re-derives identical fields.
type PlanConfig struct {
	BasePiecesTime       float64 `json:"base_pieces_time"` // seconds per piece, fallback when no roster
	InitialStock         int     `json:"initial_stock"`
	DeliveryTarget       int     `json:"delivery_target"`
	Month                string  `json:"month"`
	Year                 int     `json:"year"`
	MonthLength          int     `json:"month_length"`
	ShiftCapacitySeconds float64 `json:"shift_capacity_seconds"`
	PiecesPerPersonHour  float64 `json:"pieces_per_person_hour"`
}

// ShiftRecord is one shift's plan and actuals. Derived metrics live in
// DerivedFields and are never stored on the record itself.
type ShiftRecord struct {
	ID    string `json:"id"` // "<day>-<shift>"
	Day   int    `json:"day"`
	Shift string `json:"shift"`
	Type  string `json:"type"` // constants.TypeNormal | constants.TypeOvertime

	PlanningHour float64 `json:"planning_hour"`
	OvertimeHour float64 `json:"overtime_hour"`
	Delivery     int     `json:"delivery"`
	ManpowerIDs  []int64 `json:"manpower_ids"`

	Pcs         int     `json:"pcs"`          // allocation from generation
	ActualPcs   int     `json:"actual_pcs"`   // editable, defaults to Pcs
	TimeMinutes float64 `json:"time_minutes"` // budgeted minutes for Pcs

	Status            string  `json:"status"`
	JamProduksiAktual float64 `json:"jam_produksi_aktual"` // actual hours worked
	Notes             string  `json:"notes"`
}

// DerivedFields is the per-record output of the field calculator. It is a
// separate structure so that repeated derivation never feeds on its own
// output through the canonical records.
type DerivedFields struct {
	RecordID string `json:"record_id"`

	PlanningPcs  int `json:"planning_pcs"`
	OvertimePcs  int `json:"overtime_pcs"`
	TargetOutput int `json:"target_output"`
	ActualOutput int `json:"actual_output"`

	CumDelivery int `json:"cum_delivery"`
	CumOutput   int `json:"cum_output"`

	PrevStock    int `json:"prev_stock"`
	ActualStock  int `json:"actual_stock"`
	PlannedStock int `json:"planned_stock"` // teori stock, delivery not yet subtracted

	CycleTimeHours float64 `json:"cycle_time_hours"`
	DeltaHours     float64 `json:"delta_hours"` // actual hours minus budgeted hours
}

// PlanTotals are whole-plan sums for the summary cards.
type PlanTotals struct {
	Delivery     int     `json:"delivery"`
	PlanningPcs  int     `json:"planning_pcs"`
	OvertimePcs  int     `json:"overtime_pcs"`
	OutputActual int     `json:"output_actual"`
	ActualHours  float64 `json:"actual_hours"`
}

// Advisory is a non-fatal hint about a record. It never blocks anything.
type Advisory struct {
	RecordID string `json:"record_id"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// UpdateRecord is the edit command for one record. Nil fields are untouched.
type UpdateRecord struct {
	ActualPcs         *int     `json:"actual_pcs"`
	Status            *string  `json:"status"`
	Notes             *string  `json:"notes"`
	JamProduksiAktual *float64 `json:"jam_produksi_aktual"`
	Delivery          *int     `json:"delivery"`
	ManpowerIDs       *[]int64 `json:"manpower_ids"`
}

// ExportRow is the flat projection of one record for the excel report.
type ExportRow struct {
	Seq          int     `json:"seq"`
	Day          int     `json:"day"`
	Shift        string  `json:"shift"`
	TimeWindow   string  `json:"time_window"`
	Status       string  `json:"status"`
	OpeningStock int     `json:"opening_stock"`
	Delivery     int     `json:"delivery"`
	PlanningHour float64 `json:"planning_hour"`
	OvertimeHour float64 `json:"overtime_hour"`
	PlanningPcs  int     `json:"planning_pcs"`
	OvertimePcs  int     `json:"overtime_pcs"`
	ActualOutput int     `json:"actual_output"`
	ActualStock  int     `json:"actual_stock"`
	ActualHours  float64 `json:"actual_hours"`
	Notes        string  `json:"notes"`
}
