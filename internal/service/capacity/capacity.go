package capacity

import (
	"math"

	"produksi-golang/internal/config"
)

// fallbackRate is used when the model is built without configuration.
const fallbackRate = 5.0 // pcs per person per hour

// Model converts a base per-piece time and a roster size into an effective
// cycle time and hourly output rate. With a roster the base time is ignored:
// the line runs at rosterSize x rate pcs/hour.
type Model struct {
	piecesPerPersonHour float64
	defaultRosterSize   int
}

func New(cfg config.PlanDefaults) *Model {
	rate := cfg.PiecesPerPersonHour
	if rate <= 0 {
		rate = fallbackRate
	}
	return &Model{
		piecesPerPersonHour: rate,
		defaultRosterSize:   cfg.DefaultRosterSize,
	}
}

func (m *Model) rate() float64 {
	if m == nil || m.piecesPerPersonHour <= 0 {
		return fallbackRate
	}
	return m.piecesPerPersonHour
}

// DefaultRosterSize is the roster size assumed when a record has no manpower
// assigned yet.
func (m *Model) DefaultRosterSize() int {
	if m == nil || m.defaultRosterSize <= 0 {
		return 3
	}
	return m.defaultRosterSize
}

// EffectiveCycleTime returns seconds per piece. Roster size wins over the
// base time; with neither the result is 0, never negative or infinite.
func (m *Model) EffectiveCycleTime(baseTimePerPiece float64, rosterSize int) float64 {
	if rosterSize > 0 {
		return 3600 / (float64(rosterSize) * m.rate())
	}
	if baseTimePerPiece <= 0 {
		return 0
	}
	return baseTimePerPiece
}

// OutputPerHour returns whole pcs per hour. Fractional pieces are never
// reported.
func (m *Model) OutputPerHour(baseTimePerPiece float64, rosterSize int) int {
	ct := m.EffectiveCycleTime(baseTimePerPiece, rosterSize)
	if ct <= 0 {
		return 0
	}
	return int(math.Floor(3600 / ct))
}

// OutputOverWindow returns whole pcs producible in the given number of hours.
func (m *Model) OutputOverWindow(hours, baseTimePerPiece float64, rosterSize int) int {
	if hours <= 0 {
		return 0
	}
	ct := m.EffectiveCycleTime(baseTimePerPiece, rosterSize)
	if ct <= 0 {
		return 0
	}
	return int(math.Floor(hours * 3600 / ct))
}
