package constants

// Shift labels within one calendar day. Shift 1 always precedes shift 2.
const (
	Shift1 = "1"
	Shift2 = "2"
)

// Record types. A plan carries at most one overtime record; it absorbs demand
// overflow at generation time and disruption shortfall afterwards.
const (
	TypeNormal   = "normal"
	TypeOvertime = "overtime"
)

// Record statuses. Only StatusDisrupted triggers recompilation.
const (
	StatusNormal    = "normal"
	StatusDisrupted = "disrupted" // gangguan
	StatusCompleted = "completed"
)

// TimeWindows maps a shift label to the wall-clock window shown in reports.
var TimeWindows = map[string]string{
	Shift1: "07:00 - 15:00",
	Shift2: "15:00 - 23:00",
}

// OvertimeWindow is used for the overtime record regardless of its shift label.
const OvertimeWindow = "23:00 - 03:00"

const OvertimeNote = "lembur untuk pemenuhan target"
