package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"produksi-golang/internal/config"
)

func TestEffectiveCycleTime(t *testing.T) {
	m := New(config.PlanDefaults{PiecesPerPersonHour: 5, DefaultRosterSize: 3})

	tests := []struct {
		name       string
		baseTime   float64
		rosterSize int
		want       float64
	}{
		{"roster of 3 at 5 pcs/person/hour", 257, 3, 240},
		{"roster of 1", 257, 1, 720},
		{"roster of 6", 257, 6, 120},
		{"no roster falls back to base time", 257, 0, 257},
		{"no roster and no base time", 0, 0, 0},
		{"negative base time", -10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.EffectiveCycleTime(tt.baseTime, tt.rosterSize), 1e-9)
		})
	}
}

func TestOutputPerHour(t *testing.T) {
	m := New(config.PlanDefaults{PiecesPerPersonHour: 5})

	// 3 people x 5 pcs/hour
	assert.Equal(t, 15, m.OutputPerHour(257, 3))
	// base time only: floor(3600/257) = 14
	assert.Equal(t, 14, m.OutputPerHour(257, 0))
	assert.Equal(t, 0, m.OutputPerHour(0, 0))
}

func TestOutputOverWindow(t *testing.T) {
	m := New(config.PlanDefaults{PiecesPerPersonHour: 5})

	// 4 hours at base time 257s: floor(4*3600/257) = 56
	assert.Equal(t, 56, m.OutputOverWindow(4, 257, 0))
	// roster path: 4h * 3 * 5
	assert.Equal(t, 60, m.OutputOverWindow(4, 257, 3))
	assert.Equal(t, 0, m.OutputOverWindow(-1, 257, 3))
	assert.Equal(t, 0, m.OutputOverWindow(4, 0, 0))
}

func TestZeroValueModelIsSafe(t *testing.T) {
	m := New(config.PlanDefaults{})

	assert.InDelta(t, 240, m.EffectiveCycleTime(0, 3), 1e-9)
	assert.Equal(t, 3, m.DefaultRosterSize())
}
