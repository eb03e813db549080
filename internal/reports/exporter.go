package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Exporter renders the parish impact report in different formats.
type Exporter interface {
	ExportParishSummaries(format string, rows []ParishSummaryRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

// ExportParishSummaries returns the rendered bytes, a filename and the
// content type for the chosen format.
func (e *exporter) ExportParishSummaries(format string, rows []ParishSummaryRow) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatCSV:
		data, err := e.exportCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("parish_impact_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatExcel:
		data, err := e.exportExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("parish_impact_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		data, err := e.exportPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("parish_impact_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *exporter) exportCSV(rows []ParishSummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Parish", "City", "State", "Total Events", "Total Registrations"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.ParishName,
			r.City,
			r.State,
			strconv.FormatInt(r.TotalEvents, 10),
			strconv.FormatInt(r.TotalRegistrations, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportExcel(rows []ParishSummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Parish Impact"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Parish", "City", "State", "Total Events", "Total Registrations"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ParishName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.City)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.State)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.TotalEvents)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.TotalRegistrations)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportPDF(rows []ParishSummaryRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Parish Impact Report")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Parish", "City", "State", "Events", "Registrations"}
	widths := []float64{65, 40, 15, 30, 35}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		name := r.ParishName
		if len(name) > 38 {
			name = name[:35] + "..."
		}
		pdf.CellFormat(widths[0], 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.City, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.State, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, strconv.FormatInt(r.TotalEvents, 10), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, strconv.FormatInt(r.TotalRegistrations, 10), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
