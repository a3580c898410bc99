package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"produksi-golang/internal/constants"
	"produksi-golang/internal/storage"
)

func smallPlan(t *testing.T) (storage.PlanConfig, []storage.ShiftRecord) {
	t.Helper()
	cfg := planConfig()
	cfg.DeliveryTarget = 500
	cfg.InitialStock = 0
	records := Generate(cfg)
	require.Len(t, records, 9)
	return cfg, records
}

func TestRecompile_NoDisruptionsIsNoop(t *testing.T) {
	cfg, records := smallPlan(t)

	out := Recompile(records, testModel(), cfg.BasePiecesTime, 31)
	assert.Equal(t, records, out)
}

func TestRecompile_CreatesCompensationRecord(t *testing.T) {
	cfg, records := smallPlan(t)

	// target 56, actual 40: shortfall 16
	records[2].Status = constants.StatusDisrupted
	records[2].ActualPcs = 40

	out := Recompile(records, testModel(), cfg.BasePiecesTime, 31)
	require.Len(t, out, len(records)+1)

	comp := out[len(out)-1]
	assert.Equal(t, constants.TypeOvertime, comp.Type)
	assert.Equal(t, 31, comp.Day)
	assert.Equal(t, 16, comp.ActualPcs)
	assert.Equal(t, 0, comp.Pcs)
	assert.InDelta(t, 16*257.0/60, comp.TimeMinutes, 1e-9)
	assert.Equal(t, constants.OvertimeNote, comp.Notes)

	// input sequence untouched
	assert.Len(t, records, 9)
}

func TestRecompile_AugmentsExistingOvertime(t *testing.T) {
	cfg := planConfig() // overflows at day 31 with 1408 pcs
	records := Generate(cfg)
	compIdx := len(records) - 1
	require.Equal(t, constants.TypeOvertime, records[compIdx].Type)

	records[0].Status = constants.StatusDisrupted
	records[0].ActualPcs = 40

	out := Recompile(records, testModel(), cfg.BasePiecesTime, 31)
	require.Len(t, out, len(records), "no second bucket is ever created")

	comp := out[compIdx]
	assert.Equal(t, 1408+16, comp.ActualPcs)
	assert.InDelta(t, float64(1408+16)*257/60, comp.TimeMinutes, 1e-9)
}

func TestRecompile_Idempotent(t *testing.T) {
	cfg, records := smallPlan(t)
	records[1].Status = constants.StatusDisrupted
	records[1].ActualPcs = 30
	records[4].Status = constants.StatusDisrupted
	records[4].ActualPcs = 50

	once := Recompile(records, testModel(), cfg.BasePiecesTime, 31)
	twice := Recompile(once, testModel(), cfg.BasePiecesTime, 31)
	assert.Equal(t, once, twice)
}

func TestRecompile_ConservesTotalOutput(t *testing.T) {
	cfg, records := smallPlan(t)
	m := testModel()

	targetBefore := 0
	for _, df := range Derive(records, m, cfg.BasePiecesTime, cfg.InitialStock) {
		targetBefore += df.TargetOutput
	}

	records[1].Status = constants.StatusDisrupted
	records[1].ActualPcs = 30
	records[6].Status = constants.StatusDisrupted
	records[6].ActualPcs = 0

	out := Recompile(records, m, cfg.BasePiecesTime, 31)

	actualAfter := 0
	for _, df := range Derive(out, m, cfg.BasePiecesTime, cfg.InitialStock) {
		actualAfter += df.ActualOutput
	}
	assert.Equal(t, targetBefore, actualAfter)
}

func TestRecompile_OveractualIsNotCompensated(t *testing.T) {
	cfg, records := smallPlan(t)

	// produced above target: shortfall clamps to zero
	records[3].Status = constants.StatusDisrupted
	records[3].ActualPcs = 70

	out := Recompile(records, testModel(), cfg.BasePiecesTime, 31)
	assert.Equal(t, records, out)
}

func TestRecompile_CompletedAndNormalPassThrough(t *testing.T) {
	cfg, records := smallPlan(t)
	records[0].Status = constants.StatusCompleted
	records[0].ActualPcs = 10 // short, but not disrupted

	out := Recompile(records, testModel(), cfg.BasePiecesTime, 31)
	assert.Equal(t, records, out)
}
