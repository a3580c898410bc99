package generate_excel

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"produksi-golang/internal/storage"
)

type MockPlanExporter struct {
	mock.Mock
}

func (m *MockPlanExporter) ExportRows(ctx context.Context, snapshotID string) ([]storage.ExportRow, string, error) {
	args := m.Called(ctx, snapshotID)

	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}

	return args.Get(0).([]storage.ExportRow), args.String(1), args.Error(2)
}

func TestGenerateExcel(t *testing.T) {
	mockExporter := new(MockPlanExporter)
	mockExporter.On("ExportRows", mock.Anything, "snap-1").Return([]storage.ExportRow{
		{
			Seq: 1, Day: 1, Shift: "1", TimeWindow: "07:00 - 15:00", Status: "normal",
			OpeningStock: 332, Delivery: 100, PlanningHour: 4,
			PlanningPcs: 56, ActualOutput: 56, ActualStock: 288,
		},
		{
			Seq: 2, Day: 1, Shift: "2", TimeWindow: "15:00 - 23:00", Status: "disrupted",
			Delivery: 100, PlanningHour: 4, PlanningPcs: 56, ActualOutput: 40,
			Notes: "mesin macet",
		},
	}, "rencana januari", nil)

	svc := NewGenerateService(mockExporter)
	b, name, err := svc.GenerateExcel(context.Background(), "snap-1")

	require.NoError(t, err)
	assert.Equal(t, "rencana januari", name)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Jadwal Produksi", "A1")
	require.NoError(t, err)
	assert.Equal(t, "No", got)

	got, _ = f.GetCellValue("Jadwal Produksi", "L3")
	assert.Equal(t, "40", got)
	got, _ = f.GetCellValue("Jadwal Produksi", "O3")
	assert.Equal(t, "mesin macet", got)

	mockExporter.AssertExpectations(t)
}

func TestGenerateExcel_ExporterError(t *testing.T) {
	mockExporter := new(MockPlanExporter)
	mockExporter.On("ExportRows", mock.Anything, "bad").Return(nil, "", errors.New("snapshot not found"))

	svc := NewGenerateService(mockExporter)
	_, _, err := svc.GenerateExcel(context.Background(), "bad")

	assert.ErrorContains(t, err, "snapshot not found")
}
