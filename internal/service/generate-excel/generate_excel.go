package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"produksi-golang/internal/storage"
)

type PlanExporter interface {
	ExportRows(ctx context.Context, snapshotID string) ([]storage.ExportRow, string, error)
}

type GenerateExcelService struct {
	exporter PlanExporter
}

func NewGenerateService(exporter PlanExporter) *GenerateExcelService {
	return &GenerateExcelService{exporter: exporter}
}

var headers = []string{
	"No", "Tanggal", "Shift", "Jam Kerja", "Status",
	"Stock Awal", "Delivery", "Jam Planning", "Jam Overtime",
	"Planning (pcs)", "Overtime (pcs)", "Output Aktual", "Stock Aktual",
	"Jam Produksi Aktual", "Keterangan",
}

// GenerateExcel renders the flat plan projection as an xlsx workbook, one
// row per shift record.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, snapshotID string) ([]byte, string, error) {
	rows, planName, err := g.exporter.ExportRows(ctx, snapshotID)
	if err != nil {
		return nil, "", fmt.Errorf("fetch rows: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Jadwal Produksi"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, r := range rows {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), r.Seq)
		f.SetCellValue(sheet, cellName(2, rowNum), r.Day)
		f.SetCellValue(sheet, cellName(3, rowNum), r.Shift)
		f.SetCellValue(sheet, cellName(4, rowNum), r.TimeWindow)
		f.SetCellValue(sheet, cellName(5, rowNum), r.Status)
		f.SetCellValue(sheet, cellName(6, rowNum), r.OpeningStock)
		f.SetCellValue(sheet, cellName(7, rowNum), r.Delivery)
		f.SetCellValue(sheet, cellName(8, rowNum), r.PlanningHour)
		f.SetCellValue(sheet, cellName(9, rowNum), r.OvertimeHour)
		f.SetCellValue(sheet, cellName(10, rowNum), r.PlanningPcs)
		f.SetCellValue(sheet, cellName(11, rowNum), r.OvertimePcs)
		f.SetCellValue(sheet, cellName(12, rowNum), r.ActualOutput)
		f.SetCellValue(sheet, cellName(13, rowNum), r.ActualStock)
		f.SetCellValue(sheet, cellName(14, rowNum), r.ActualHours)
		f.SetCellValue(sheet, cellName(15, rowNum), r.Notes)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "E", 12)
	f.SetColWidth(sheet, "F", "N", 15)
	f.SetColWidth(sheet, "O", "O", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), planName, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
