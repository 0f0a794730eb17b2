package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/autocarcare/garage-api/pkg/gst"
)

const reportSheet = "GST Slab Report"

// WriteXLSX writes the slab report as a workbook with one sheet. Rows
// keep numeric cells so totals stay summable in the spreadsheet.
func WriteXLSX(w io.Writer, title, period string, rows []gst.ReportRow, grandTotal gst.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SetCellValue(reportSheet, "A1", title); err != nil {
		return err
	}
	if period != "" {
		if err := f.SetCellValue(reportSheet, "A2", "Period: "+period); err != nil {
			return err
		}
	}

	header := reportHeader()
	const headerRow = 4
	for i, name := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(reportSheet, cell, name); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(header), headerRow)
	if err := f.SetCellStyle(reportSheet, "A4", lastHeader, bold); err != nil {
		return err
	}

	rowNum := headerRow + 1
	for _, row := range rows {
		if err := writeXLSXRow(f, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}
	if err := writeXLSXRow(f, rowNum, grandTotal); err != nil {
		return err
	}
	totalStart, _ := excelize.CoordinatesToCellName(1, rowNum)
	totalEnd, _ := excelize.CoordinatesToCellName(len(header), rowNum)
	if err := f.SetCellStyle(reportSheet, totalStart, totalEnd, bold); err != nil {
		return err
	}

	if err := f.SetColWidth(reportSheet, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "D", "D", 24); err != nil {
		return err
	}

	return f.Write(w)
}

func writeXLSXRow(f *excelize.File, rowNum int, row gst.ReportRow) error {
	values := []interface{}{
		row.InvoiceNumber,
		row.InvoiceDate,
		row.JobCardNumber,
		row.CustomerName,
		row.CustomerGSTIN,
	}
	for _, bucket := range row.Buckets {
		values = append(values, bucket.Amount, bucket.TaxableAmount, bucket.CGST, bucket.SGST, bucket.IGST)
	}
	values = append(values, row.TotalSale, row.TotalTaxable, row.TotalCGST, row.TotalSGST, row.TotalIGST)

	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(reportSheet, start, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}
